package usecases

import (
	"context"

	"intervia/internal/domain/intervention"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	InterventionID uint
	TechnicianID   uint
}

// AssignTechnicianResult reports whether a row was actually updated. Found
// false is a soft outcome the handler turns into {success:false}, not an
// HTTP error.
type AssignTechnicianResult struct {
	Found bool
}

type AssignTechnicianUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewAssignTechnicianUseCase(repo intervention.Repository, logger logger.Interface) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{repo: repo, logger: logger}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error) {
	if cmd.InterventionID == 0 {
		return nil, errors.NewValidationError("identifiant d'intervention requis")
	}
	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("identifiant de technicien requis")
	}

	found, err := uc.repo.AssignTechnician(ctx, cmd.InterventionID, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to assign technician",
			"error", err, "intervention_id", cmd.InterventionID, "technician_id", cmd.TechnicianID)
		return nil, err
	}

	if !found {
		uc.logger.Warnw("assign technician matched no row", "intervention_id", cmd.InterventionID)
	}

	return &AssignTechnicianResult{Found: found}, nil
}
