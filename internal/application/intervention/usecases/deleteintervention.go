package usecases

import (
	"context"

	"intervia/internal/domain/intervention"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

type DeleteInterventionUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewDeleteInterventionUseCase(repo intervention.Repository, logger logger.Interface) *DeleteInterventionUseCase {
	return &DeleteInterventionUseCase{repo: repo, logger: logger}
}

func (uc *DeleteInterventionUseCase) Execute(ctx context.Context, interventionID uint) error {
	if interventionID == 0 {
		return errors.NewValidationError("identifiant d'intervention requis")
	}

	found, err := uc.repo.Delete(ctx, interventionID)
	if err != nil {
		uc.logger.Errorw("failed to delete intervention", "error", err, "intervention_id", interventionID)
		return err
	}
	if !found {
		return errors.NewNotFoundError("intervention introuvable")
	}

	uc.logger.Infow("intervention deleted", "intervention_id", interventionID)
	return nil
}
