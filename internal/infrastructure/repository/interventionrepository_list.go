package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"intervia/internal/domain/intervention"
	"intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/infrastructure/persistence/models"
	"intervia/internal/shared/constants"
)

// interventionRow is the flat scan target for the joined list query.
type interventionRow struct {
	models.InterventionModel `gorm:"embedded"`
	StatusName               *string
	TypeName                 *string
	TechnicianName           *string
}

// List returns one page of interventions plus the total count for the same
// filter. Count and rows are built from the same clause set so the page and
// the total can never disagree.
func (r *InterventionRepository) List(ctx context.Context, filter intervention.ListFilter, now time.Time) ([]intervention.ListItem, int64, error) {
	statusIDs, err := r.statusIDsForFilter(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	terminalIDs, err := r.terminalStatusIDs(ctx)
	if err != nil {
		return nil, 0, err
	}

	base := func() *gorm.DB {
		return r.applyFilters(r.joined(ctx), filter, now, statusIDs, terminalIDs)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interventions: %w", err)
	}

	var rows []interventionRow
	err = base().
		Select(r.rowSelect()).
		Order(r.orderClause(filter)).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interventions: %w", err)
	}

	items := make([]intervention.ListItem, 0, len(rows))
	for i := range rows {
		item, err := r.toListItem(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}

	return items, total, nil
}

func (r *InterventionRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(constants.TableInterventions + " AS i").
		Joins("LEFT JOIN " + constants.TableTechnicians + " t ON t.uid = i.technician_id").
		Joins("LEFT JOIN " + constants.TableStatuses + " s ON s.uid = i.status_id").
		Joins("LEFT JOIN " + constants.TableTypes + " ty ON ty.uid = i.type_id")
}

func (r *InterventionRepository) rowSelect() string {
	return "i.uid, i.number, i.public_token, i.title, i.description, " +
		"i.address, i.city, i.building, i.floor, i.apartment, i.priority, " +
		"i.status_id, i.type_id, i.client_id, i.chantier_id, i.technician_id, " +
		"i.scheduled_on, i.scheduled_time, i.agency_id, i.created_at, i.updated_at, " +
		"s.name AS status_name, ty.name AS type_name, " +
		r.technicianNameExpr() + " AS technician_name"
}

// technicianNameExpr builds the full-name expression in the dialect at hand.
// MySQL and SQLite disagree on string concatenation.
func (r *InterventionRepository) technicianNameExpr() string {
	if r.db.Dialector.Name() == "mysql" {
		return "CONCAT(t.firstname, ' ', t.lastname)"
	}
	return "(t.firstname || ' ' || t.lastname)"
}

func (r *InterventionRepository) applyFilters(q *gorm.DB, filter intervention.ListFilter, now time.Time, statusIDs, terminalIDs []uint) *gorm.DB {
	q = q.Where("i.agency_id = ?", r.agencyID).Where("i.uid <> 0")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"(LOWER(i.number) LIKE ? OR LOWER(i.title) LIKE ? OR LOWER(i.address) LIKE ? "+
				"OR LOWER(i.city) LIKE ? OR LOWER(i.description) LIKE ? "+
				"OR LOWER("+r.technicianNameExpr()+") LIKE ?)",
			pattern, pattern, pattern, pattern, pattern, pattern)
	}

	if filter.Status != "" {
		if len(statusIDs) == 0 {
			// No lookup row classifies into the requested bucket.
			q = q.Where("1 = 0")
		} else {
			q = q.Where("i.status_id IN ?", statusIDs)
		}
	}

	switch filter.Missing {
	case intervention.MissingTechnician:
		q = q.Where("(i.technician_id IS NULL OR i.technician_id = 0)")
	case intervention.MissingDate:
		q = q.Where("i.scheduled_on IS NULL")
	case intervention.MissingBoth:
		q = q.Where("(i.technician_id IS NULL OR i.technician_id = 0)").
			Where("i.scheduled_on IS NULL")
	}

	if filter.Kind.IsUrgent() {
		q = q.Where("i.created_at >= ?", r.clock.WindowStart(now))
		q = q.Where("(i.technician_id IS NULL OR i.technician_id = 0 OR i.scheduled_on IS NULL)")
		if len(terminalIDs) > 0 {
			q = q.Where("i.status_id NOT IN ?", terminalIDs)
		}
	}

	if filter.Time != intervention.TimeFilterNone {
		// remaining <= N hours means at least window-N hours already elapsed.
		elapsed := r.clock.WindowHours - filter.Time.Hours()
		if elapsed > 0 {
			q = q.Where("i.created_at <= ?", r.clock.HoursBack(now, elapsed))
		}
		if !filter.Kind.IsUrgent() {
			q = q.Where("i.created_at >= ?", r.clock.WindowStart(now))
		}
	}

	if filter.Priority != "" {
		q = q.Where("i.priority = ?", string(filter.Priority))
	}

	if filter.TechnicianID != nil {
		q = q.Where("i.technician_id = ?", *filter.TechnicianID)
	}

	if filter.Date != nil {
		q = q.Where("i.scheduled_on >= ? AND i.scheduled_on < ?",
			filter.Date.Start, filter.Date.End.AddDate(0, 0, 1))
	}

	return q
}

// orderClause maps the requested sort field onto a whitelisted column
// expression. Anything outside the whitelist falls back to the default order
// of the list kind, and every order ends with the uid tie-break so pages are
// stable across requests.
func (r *InterventionRepository) orderClause(filter intervention.ListFilter) string {
	sortable := map[string]string{
		"id":         "i.uid",
		"title":      "i.title",
		"status":     "s.name",
		"priority":   "i.priority",
		"urgency":    "i.created_at",
		"created":    "i.created_at",
		"timestamp":  "i.created_at",
		"technician": r.technicianNameExpr(),
	}

	dir := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		dir = "DESC"
	}

	expr, ok := sortable[strings.ToLower(filter.SortBy)]
	if !ok {
		if filter.Kind.IsUrgent() {
			// Oldest first, least time remaining on top.
			expr, dir = "i.created_at", "ASC"
		} else {
			expr, dir = "i.created_at", "DESC"
		}
	}

	return expr + " " + dir + ", i.uid DESC"
}

// statusIDsForFilter resolves a bucket filter to the set of lookup row ids
// whose names classify into that bucket.
func (r *InterventionRepository) statusIDsForFilter(ctx context.Context, filter intervention.ListFilter) ([]uint, error) {
	if filter.Status == "" {
		return nil, nil
	}
	statuses, err := r.allStatuses(ctx)
	if err != nil {
		return nil, err
	}

	target := filter.Status.Canonical()
	var ids []uint
	for _, s := range statuses {
		if valueobjects.ClassifyStatus(s.Name).Canonical() == target {
			ids = append(ids, s.UID)
		}
	}
	return ids, nil
}

func (r *InterventionRepository) terminalStatusIDs(ctx context.Context) ([]uint, error) {
	statuses, err := r.allStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var ids []uint
	for _, s := range statuses {
		if valueobjects.IsTerminalStatusName(s.Name) {
			ids = append(ids, s.UID)
		}
	}
	return ids, nil
}

func (r *InterventionRepository) allStatuses(ctx context.Context) ([]models.InterventionStatusModel, error) {
	var statuses []models.InterventionStatusModel
	if err := r.db.WithContext(ctx).Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to load intervention statuses: %w", err)
	}
	return statuses, nil
}

func (r *InterventionRepository) toListItem(row *interventionRow) (*intervention.ListItem, error) {
	iv, err := r.mapper.ToDomain(&row.InterventionModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map intervention %d: %w", row.UID, err)
	}
	return &intervention.ListItem{
		Intervention:   iv,
		StatusName:     deref(row.StatusName),
		TypeName:       deref(row.TypeName),
		TechnicianName: deref(row.TechnicianName),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
