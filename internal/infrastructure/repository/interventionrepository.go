package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"intervia/internal/domain/intervention"
	"intervia/internal/infrastructure/persistence/mappers"
	"intervia/internal/infrastructure/persistence/models"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

// InterventionRepository is the gorm-backed intervention store. Every query
// is scoped to the configured agency and excludes the legacy sentinel row 0.
type InterventionRepository struct {
	db       *gorm.DB
	mapper   mappers.InterventionMapper
	agencyID uint
	clock    biztime.SLAClock
	logger   logger.Interface
}

func NewInterventionRepository(db *gorm.DB, agencyID uint, clock biztime.SLAClock) *InterventionRepository {
	return &InterventionRepository{
		db:       db,
		mapper:   mappers.NewInterventionMapper(),
		agencyID: agencyID,
		clock:    clock,
		logger:   logger.NewLogger().Named("repository.intervention"),
	}
}

func (r *InterventionRepository) Save(ctx context.Context, iv *intervention.Intervention) error {
	model := r.mapper.ToModel(iv)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(
				fmt.Sprintf("une intervention avec le numéro %s existe déjà", iv.Number()))
		}
		return fmt.Errorf("failed to save intervention: %w", err)
	}

	return iv.SetUID(model.UID)
}

func (r *InterventionRepository) FindByNumber(ctx context.Context, number string) (*intervention.ListItem, error) {
	return r.findOne(ctx, "i.number = ?", number)
}

func (r *InterventionRepository) FindByToken(ctx context.Context, token string) (*intervention.ListItem, error) {
	return r.findOne(ctx, "i.public_token = ?", token)
}

func (r *InterventionRepository) findOne(ctx context.Context, cond string, arg interface{}) (*intervention.ListItem, error) {
	var rows []interventionRow
	err := r.joined(ctx).
		Where(cond, arg).
		Select(r.rowSelect()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find intervention: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("intervention introuvable")
	}

	item, err := r.toListItem(&rows[0])
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AssignTechnician sets the technician on an intervention. Returns false,
// nil when no row matched: an unknown intervention is a soft outcome here.
func (r *InterventionRepository) AssignTechnician(ctx context.Context, interventionID, technicianID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InterventionModel{}).
		Where("uid = ? AND agency_id = ?", interventionID, r.agencyID).
		Updates(map[string]interface{}{
			"technician_id": technicianID,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to assign technician: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AssignSchedule sets the intervention date and optional time.
func (r *InterventionRepository) AssignSchedule(ctx context.Context, interventionID uint, on time.Time, at string) (bool, error) {
	day := biztime.StartOfDay(on)
	result := r.db.WithContext(ctx).
		Model(&models.InterventionModel{}).
		Where("uid = ? AND agency_id = ?", interventionID, r.agencyID).
		Updates(map[string]interface{}{
			"scheduled_on":   day,
			"scheduled_time": at,
			"updated_at":     biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to assign schedule: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *InterventionRepository) Delete(ctx context.Context, interventionID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("uid = ? AND agency_id = ? AND uid <> 0", interventionID, r.agencyID).
		Delete(&models.InterventionModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete intervention: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
