package usecases

import (
	"context"

	"intervia/internal/application/intervention/dto"
	"intervia/internal/domain/intervention"
	"intervia/internal/shared/logger"
)

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetStatsUseCase struct {
	repo   intervention.Repository
	logger logger.Interface
}

func NewGetStatsUseCase(repo intervention.Repository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load intervention stats", "error", err)
		return nil, err
	}

	return &dto.StatsDTO{
		Received:   stats.Received,
		Assigned:   stats.Assigned,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Billed:     stats.Billed,
		Paid:       stats.Paid,
		Total:      stats.Total,
	}, nil
}
