package mappers

import (
	"intervia/internal/domain/intervention"
	vo "intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/infrastructure/persistence/models"
)

// InterventionMapper handles the conversion between Intervention domain
// entities and persistence models.
type InterventionMapper interface {
	ToModel(iv *intervention.Intervention) *models.InterventionModel
	ToDomain(model *models.InterventionModel) (*intervention.Intervention, error)
}

type interventionMapper struct{}

func NewInterventionMapper() InterventionMapper {
	return &interventionMapper{}
}

func (m *interventionMapper) ToModel(iv *intervention.Intervention) *models.InterventionModel {
	return &models.InterventionModel{
		UID:           iv.UID(),
		Number:        iv.Number(),
		PublicToken:   iv.PublicToken(),
		Title:         iv.Title(),
		Description:   iv.Description(),
		Address:       iv.Address(),
		City:          iv.City(),
		Building:      iv.Building(),
		Floor:         iv.Floor(),
		Apartment:     iv.Apartment(),
		Priority:      iv.Priority().String(),
		StatusID:      iv.StatusID(),
		TypeID:        iv.TypeID(),
		ClientID:      iv.ClientID(),
		ChantierID:    iv.ChantierID(),
		TechnicianID:  iv.TechnicianID(),
		ScheduledOn:   iv.ScheduledOn(),
		ScheduledTime: iv.ScheduledTime(),
		AgencyID:      iv.AgencyID(),
		CreatedAt:     iv.CreatedAt(),
		UpdatedAt:     iv.UpdatedAt(),
	}
}

func (m *interventionMapper) ToDomain(model *models.InterventionModel) (*intervention.Intervention, error) {
	priority, ok := vo.NewPriority(model.Priority)
	if !ok {
		priority = vo.PriorityNormale
	}

	return intervention.ReconstructIntervention(
		model.UID,
		intervention.NewInterventionParams{
			Number:        model.Number,
			PublicToken:   model.PublicToken,
			Title:         model.Title,
			Description:   model.Description,
			Address:       model.Address,
			City:          model.City,
			Building:      model.Building,
			Floor:         model.Floor,
			Apartment:     model.Apartment,
			Priority:      priority,
			StatusID:      model.StatusID,
			TypeID:        model.TypeID,
			ClientID:      model.ClientID,
			ChantierID:    model.ChantierID,
			TechnicianID:  model.TechnicianID,
			ScheduledOn:   model.ScheduledOn,
			ScheduledTime: model.ScheduledTime,
			AgencyID:      model.AgencyID,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}
