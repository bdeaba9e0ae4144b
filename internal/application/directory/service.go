// Package directory exposes the dropdown reference data to the HTTP layer.
package directory

import (
	"context"

	"intervia/internal/domain/directory"
	"intervia/internal/shared/logger"
)

type OptionDTO struct {
	UID  uint   `json:"uid"`
	Name string `json:"name"`
}

type TechnicianDTO struct {
	UID       uint   `json:"uid"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
}

type Service struct {
	repo   directory.Repository
	logger logger.Interface
}

func NewService(repo directory.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListClients(ctx context.Context) ([]OptionDTO, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		s.logger.Errorw("failed to list clients", "error", err)
		return nil, err
	}

	options := make([]OptionDTO, 0, len(clients))
	for _, c := range clients {
		options = append(options, OptionDTO{UID: c.UID, Name: c.Name})
	}
	return options, nil
}

func (s *Service) ListTechnicians(ctx context.Context) ([]TechnicianDTO, error) {
	technicians, err := s.repo.ListTechnicians(ctx)
	if err != nil {
		s.logger.Errorw("failed to list technicians", "error", err)
		return nil, err
	}

	result := make([]TechnicianDTO, 0, len(technicians))
	for _, t := range technicians {
		result = append(result, TechnicianDTO{
			UID:       t.UID,
			Firstname: t.Firstname,
			Lastname:  t.Lastname,
			FullName:  t.FullName(),
			Address:   t.Address,
		})
	}
	return result, nil
}

func (s *Service) ListChantiers(ctx context.Context) ([]OptionDTO, error) {
	chantiers, err := s.repo.ListChantiers(ctx)
	if err != nil {
		s.logger.Errorw("failed to list chantiers", "error", err)
		return nil, err
	}

	options := make([]OptionDTO, 0, len(chantiers))
	for _, c := range chantiers {
		options = append(options, OptionDTO{UID: c.UID, Name: c.Name})
	}
	return options, nil
}

func (s *Service) ListStatuses(ctx context.Context) ([]OptionDTO, error) {
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		s.logger.Errorw("failed to list intervention statuses", "error", err)
		return nil, err
	}

	options := make([]OptionDTO, 0, len(statuses))
	for _, st := range statuses {
		options = append(options, OptionDTO{UID: st.UID, Name: st.Name})
	}
	return options, nil
}

func (s *Service) ListTypes(ctx context.Context) ([]OptionDTO, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		s.logger.Errorw("failed to list intervention types", "error", err)
		return nil, err
	}

	options := make([]OptionDTO, 0, len(types))
	for _, ty := range types {
		options = append(options, OptionDTO{UID: ty.UID, Name: ty.Name})
	}
	return options, nil
}
