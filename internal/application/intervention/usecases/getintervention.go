package usecases

import (
	"context"

	"intervia/internal/application/intervention/dto"
	"intervia/internal/domain/intervention"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

type GetInterventionUseCase struct {
	repo   intervention.Repository
	clock  biztime.SLAClock
	logger logger.Interface
}

func NewGetInterventionUseCase(repo intervention.Repository, clock biztime.SLAClock, logger logger.Interface) *GetInterventionUseCase {
	return &GetInterventionUseCase{repo: repo, clock: clock, logger: logger}
}

// ByNumber fetches an intervention through its human-facing number. The
// returned shape includes the public token so the dashboard can build the
// shareable link.
func (uc *GetInterventionUseCase) ByNumber(ctx context.Context, number string) (*dto.InterventionDTO, error) {
	if number == "" {
		return nil, errors.NewValidationError("le numéro est requis")
	}

	item, err := uc.repo.FindByNumber(ctx, number)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to fetch intervention", "error", err, "numero", number)
		}
		return nil, err
	}

	result := dto.FromListItem(item, uc.clock, biztime.NowUTC())
	result.PublicToken = item.Intervention.PublicToken()
	return &result, nil
}

// ByToken serves the unauthenticated public view.
func (uc *GetInterventionUseCase) ByToken(ctx context.Context, token string) (*dto.InterventionDTO, error) {
	if token == "" {
		return nil, errors.NewValidationError("jeton requis")
	}

	item, err := uc.repo.FindByToken(ctx, token)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to fetch intervention by token", "error", err)
		}
		return nil, err
	}

	result := dto.FromListItem(item, uc.clock, biztime.NowUTC())
	return &result, nil
}
