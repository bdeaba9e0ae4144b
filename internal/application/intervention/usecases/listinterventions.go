package usecases

import (
	"context"

	"intervia/internal/application/intervention/dto"
	"intervia/internal/domain/intervention"
	vo "intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/logger"
	"intervia/internal/shared/utils"
)

// ListInterventionsQuery carries the raw query parameters of the two list
// endpoints. Unrecognized filter values degrade to "no filter" instead of
// failing the request, matching the legacy dashboard behavior.
type ListInterventionsQuery struct {
	Kind         intervention.ListKind
	Search       string
	Status       string
	Missing      string
	TimeFilter   string
	Priority     string
	TechnicianID *uint
	Date         string
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

type ListInterventionsResult struct {
	Items      []dto.InterventionDTO
	Pagination dto.PaginationDTO
}

type ListInterventionsExecutor interface {
	Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error)
}

type ListInterventionsUseCase struct {
	repo   intervention.Repository
	clock  biztime.SLAClock
	logger logger.Interface
}

func NewListInterventionsUseCase(repo intervention.Repository, clock biztime.SLAClock, logger logger.Interface) *ListInterventionsUseCase {
	return &ListInterventionsUseCase{repo: repo, clock: clock, logger: logger}
}

func (uc *ListInterventionsUseCase) Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error) {
	filter := uc.buildFilter(query)
	now := biztime.NowUTC()

	items, total, err := uc.repo.List(ctx, filter, now)
	if err != nil {
		uc.logger.Errorw("failed to list interventions", "error", err, "kind", string(filter.Kind))
		return nil, err
	}

	result := &ListInterventionsResult{
		Items:      make([]dto.InterventionDTO, 0, len(items)),
		Pagination: dto.NewPaginationDTO(filter.Page, filter.Limit, total),
	}
	for i := range items {
		result.Items = append(result.Items, dto.FromListItem(&items[i], uc.clock, now))
	}

	return result, nil
}

func (uc *ListInterventionsUseCase) buildFilter(query ListInterventionsQuery) intervention.ListFilter {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	filter := intervention.ListFilter{
		Kind:      query.Kind,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      pagination.Page,
		Limit:     pagination.Limit,
	}

	if bucket, ok := vo.ParseBucket(query.Status); ok {
		filter.Status = bucket
	} else if query.Status != "" {
		// Keep the unmatchable value so the filter selects nothing,
		// the same as an unknown status in the legacy dashboard.
		filter.Status = vo.StatusBucket(query.Status)
	}

	if missing, ok := intervention.ParseMissingFilter(query.Missing); ok {
		filter.Missing = missing
	}

	if tf, ok := intervention.ParseTimeFilter(query.TimeFilter); ok {
		filter.Time = tf
	}

	if query.Priority != "" {
		p := vo.Priority(query.Priority)
		if p.IsValid() {
			filter.Priority = p
		}
	}

	filter.TechnicianID = query.TechnicianID

	if query.Date != "" {
		if dr, err := intervention.ResolvePreset(query.Date, biztime.NowUTC()); err == nil {
			filter.Date = &dr
		} else if dr, err := intervention.ParseDateFilter(query.Date); err == nil {
			filter.Date = &dr
		} else {
			uc.logger.Warnw("ignoring invalid date filter", "date", query.Date, "error", err)
		}
	}

	return filter
}
