package usecases

import (
	"context"
	"time"

	"intervia/internal/domain/intervention"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/constants"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

// AssignDateCommand carries the schedule update. Date accepts the legacy
// DD/MM/YYYY form or the HTML input YYYY-MM-DD form; Time is optional HH:mm.
type AssignDateCommand struct {
	InterventionID uint
	Date           string
	Time           string
}

type AssignDateResult struct {
	Found bool
}

type AssignDateUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewAssignDateUseCase(repo intervention.Repository, logger logger.Interface) *AssignDateUseCase {
	return &AssignDateUseCase{repo: repo, logger: logger}
}

func (uc *AssignDateUseCase) Execute(ctx context.Context, cmd AssignDateCommand) (*AssignDateResult, error) {
	if cmd.InterventionID == 0 {
		return nil, errors.NewValidationError("identifiant d'intervention requis")
	}
	if cmd.Date == "" {
		return nil, errors.NewValidationError("la date est requise")
	}

	day, err := parseAssignDate(cmd.Date)
	if err != nil {
		return nil, err
	}

	if cmd.Time != "" {
		if _, err := time.Parse(constants.ScheduleTimeFormat, cmd.Time); err != nil {
			return nil, errors.NewValidationError("heure invalide: " + cmd.Time)
		}
	}

	found, err := uc.repo.AssignSchedule(ctx, cmd.InterventionID, day, cmd.Time)
	if err != nil {
		uc.logger.Errorw("failed to assign date",
			"error", err, "intervention_id", cmd.InterventionID, "date", cmd.Date)
		return nil, err
	}

	return &AssignDateResult{Found: found}, nil
}

func parseAssignDate(s string) (time.Time, error) {
	for _, layout := range []string{constants.StorageDateFormat, constants.InputDateFormat} {
		if t, err := biztime.ParseDateInBizTimezone(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError("date invalide: " + s)
}
