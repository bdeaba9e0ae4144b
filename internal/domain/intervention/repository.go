package intervention

import (
	"context"
	"time"
)

// ListItem is an intervention row joined with the display names the
// dashboard renders.
type ListItem struct {
	Intervention   *Intervention
	StatusName     string
	TypeName       string
	TechnicianName string
}

// Stats are the per-bucket intervention counts for the dashboard header.
type Stats struct {
	Received   int64
	Assigned   int64
	InProgress int64
	Completed  int64
	Billed     int64
	Paid       int64
	Total      int64
}

// Repository is the intervention storage port. List builds the rows query
// and the matching count query from the same filter clauses; both are
// parameterized and scoped to the configured agency. The boolean results on
// the narrow updates report whether a row was affected: "not found" is a
// soft outcome, not an error.
type Repository interface {
	Save(ctx context.Context, iv *Intervention) error
	FindByNumber(ctx context.Context, number string) (*ListItem, error)
	FindByToken(ctx context.Context, token string) (*ListItem, error)
	AssignTechnician(ctx context.Context, interventionID, technicianID uint) (bool, error)
	AssignSchedule(ctx context.Context, interventionID uint, on time.Time, at string) (bool, error)
	Delete(ctx context.Context, interventionID uint) (bool, error)
	List(ctx context.Context, filter ListFilter, now time.Time) ([]ListItem, int64, error)
	Stats(ctx context.Context) (Stats, error)
}
