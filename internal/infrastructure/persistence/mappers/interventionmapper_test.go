package mappers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervia/internal/domain/intervention"
	"intervia/internal/infrastructure/persistence/models"
)

func baseModel() *models.InterventionModel {
	created := time.Date(2026, time.August, 25, 8, 0, 0, 0, time.UTC)
	return &models.InterventionModel{
		UID:         7,
		Number:      "1234",
		PublicToken: strings.Repeat("x", 16),
		Title:       "Chaudière en panne",
		Description: "Plus de chauffage depuis hier",
		Priority:    "Urgente",
		AgencyID:    1,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestInterventionMapper_RoundTrip(t *testing.T) {
	mapper := NewInterventionMapper()
	model := baseModel()
	tech := uint(3)
	model.TechnicianID = &tech
	on := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	model.ScheduledOn = &on
	model.ScheduledTime = "09:30"

	iv, err := mapper.ToDomain(model)
	require.NoError(t, err)

	back := mapper.ToModel(iv)
	assert.Equal(t, model.UID, back.UID)
	assert.Equal(t, model.Number, back.Number)
	assert.Equal(t, model.PublicToken, back.PublicToken)
	assert.Equal(t, model.Priority, back.Priority)
	require.NotNil(t, back.TechnicianID)
	assert.Equal(t, tech, *back.TechnicianID)
	require.NotNil(t, back.ScheduledOn)
	assert.Equal(t, on, *back.ScheduledOn)
	assert.Equal(t, "09:30", back.ScheduledTime)
}

func TestInterventionMapper_ZeroTechnicianNormalizedToNil(t *testing.T) {
	mapper := NewInterventionMapper()

	t.Run("null in storage", func(t *testing.T) {
		iv, err := mapper.ToDomain(baseModel())
		require.NoError(t, err)
		assert.Nil(t, iv.TechnicianID())
		assert.True(t, iv.MissingTechnician())
	})

	t.Run("zero sentinel in storage", func(t *testing.T) {
		model := baseModel()
		zero := uint(0)
		model.TechnicianID = &zero
		iv, err := mapper.ToDomain(model)
		require.NoError(t, err)
		assert.Nil(t, iv.TechnicianID(), "legacy 0 and NULL both mean unassigned")
	})
}

func TestInterventionMapper_UnknownPriorityFallsBack(t *testing.T) {
	mapper := NewInterventionMapper()
	model := baseModel()
	model.Priority = "Inconnue"

	iv, err := mapper.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, "Normale", iv.Priority().String())
}

func TestInterventionMapper_NewInterventionKeepsZeroUID(t *testing.T) {
	mapper := NewInterventionMapper()

	iv, err := intervention.NewIntervention(intervention.NewInterventionParams{
		Number:      "5555",
		PublicToken: strings.Repeat("t", 16),
		Title:       "Volet roulant bloqué",
		Description: "Volet bloqué à mi-course",
		AgencyID:    1,
	})
	require.NoError(t, err)

	model := mapper.ToModel(iv)
	assert.Zero(t, model.UID, "uid assigned by the database on insert")
	assert.Nil(t, model.TechnicianID)
	assert.Nil(t, model.ScheduledOn)
}
