package repository

import (
	"context"
	"fmt"

	"intervia/internal/domain/intervention"
	"intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/shared/constants"
)

type statusCountRow struct {
	Name  string
	Count int64
}

// Stats counts interventions per status bucket. Grouping happens in SQL on
// the raw status name, classification happens here so the keyword rules live
// in one place.
func (r *InterventionRepository) Stats(ctx context.Context) (intervention.Stats, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Table(constants.TableInterventions + " AS i").
		Joins("LEFT JOIN " + constants.TableStatuses + " s ON s.uid = i.status_id").
		Where("i.agency_id = ?", r.agencyID).
		Where("i.uid <> 0").
		Select("COALESCE(s.name, '') AS name, COUNT(*) AS count").
		Group("s.name").
		Scan(&rows).Error
	if err != nil {
		return intervention.Stats{}, fmt.Errorf("failed to count interventions by status: %w", err)
	}

	var stats intervention.Stats
	for _, row := range rows {
		stats.Total += row.Count
		switch valueobjects.ClassifyStatus(row.Name).Canonical() {
		case valueobjects.BucketReceived:
			stats.Received += row.Count
		case valueobjects.BucketAssigned:
			stats.Assigned += row.Count
		case valueobjects.BucketInProgress:
			stats.InProgress += row.Count
		case valueobjects.BucketCompleted:
			stats.Completed += row.Count
		case valueobjects.BucketBilled:
			stats.Billed += row.Count
		case valueobjects.BucketPaid:
			stats.Paid += row.Count
		}
	}

	return stats, nil
}

