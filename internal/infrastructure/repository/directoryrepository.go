package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"intervia/internal/domain/directory"
	"intervia/internal/infrastructure/persistence/models"
)

// DirectoryRepository serves the lookup tables behind the dashboard
// dropdowns. Rows are returned in display order.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) ListClients(ctx context.Context) ([]directory.Client, error) {
	var rows []models.ClientModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]directory.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, directory.Client{UID: row.UID, Name: row.Name})
	}
	return clients, nil
}

func (r *DirectoryRepository) ListTechnicians(ctx context.Context) ([]directory.Technician, error) {
	var rows []models.TechnicianModel
	if err := r.db.WithContext(ctx).Order("lastname ASC, firstname ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	technicians := make([]directory.Technician, 0, len(rows))
	for _, row := range rows {
		technicians = append(technicians, directory.Technician{
			UID:       row.UID,
			Firstname: row.Firstname,
			Lastname:  row.Lastname,
			Address:   row.Address,
		})
	}
	return technicians, nil
}

func (r *DirectoryRepository) ListChantiers(ctx context.Context) ([]directory.Chantier, error) {
	var rows []models.ChantierModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list chantiers: %w", err)
	}

	chantiers := make([]directory.Chantier, 0, len(rows))
	for _, row := range rows {
		chantiers = append(chantiers, directory.Chantier{UID: row.UID, Name: row.Name})
	}
	return chantiers, nil
}

func (r *DirectoryRepository) ListStatuses(ctx context.Context) ([]directory.StatusOption, error) {
	var rows []models.InterventionStatusModel
	if err := r.db.WithContext(ctx).Order("uid ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list intervention statuses: %w", err)
	}

	statuses := make([]directory.StatusOption, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, directory.StatusOption{UID: row.UID, Name: row.Name})
	}
	return statuses, nil
}

func (r *DirectoryRepository) ListTypes(ctx context.Context) ([]directory.TypeOption, error) {
	var rows []models.InterventionTypeModel
	if err := r.db.WithContext(ctx).Order("uid ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list intervention types: %w", err)
	}

	types := make([]directory.TypeOption, 0, len(rows))
	for _, row := range rows {
		types = append(types, directory.TypeOption{UID: row.UID, Name: row.Name})
	}
	return types, nil
}
