package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervia/internal/domain/intervention"
	vo "intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
)

type stubRepo struct {
	saved       *intervention.Intervention
	saveErr     error
	found       bool
	opErr       error
	lastFilter  intervention.ListFilter
	listItems   []intervention.ListItem
	listTotal   int64
	listErr     error
	stats       intervention.Stats
	statsErr    error
	findItem    *intervention.ListItem
	findErr     error
	assignedOn  time.Time
	assignedAt  string
	assignedTec uint
}

func (s *stubRepo) Save(_ context.Context, iv *intervention.Intervention) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = iv
	return iv.SetUID(42)
}

func (s *stubRepo) FindByNumber(_ context.Context, _ string) (*intervention.ListItem, error) {
	return s.findItem, s.findErr
}

func (s *stubRepo) FindByToken(_ context.Context, _ string) (*intervention.ListItem, error) {
	return s.findItem, s.findErr
}

func (s *stubRepo) AssignTechnician(_ context.Context, _, technicianID uint) (bool, error) {
	s.assignedTec = technicianID
	return s.found, s.opErr
}

func (s *stubRepo) AssignSchedule(_ context.Context, _ uint, on time.Time, at string) (bool, error) {
	s.assignedOn = on
	s.assignedAt = at
	return s.found, s.opErr
}

func (s *stubRepo) Delete(_ context.Context, _ uint) (bool, error) {
	return s.found, s.opErr
}

func (s *stubRepo) List(_ context.Context, filter intervention.ListFilter, _ time.Time) ([]intervention.ListItem, int64, error) {
	s.lastFilter = filter
	return s.listItems, s.listTotal, s.listErr
}

func (s *stubRepo) Stats(_ context.Context) (intervention.Stats, error) {
	return s.stats, s.statsErr
}

func validCreateCommand() CreateInterventionCommand {
	return CreateInterventionCommand{
		Numero:      "9999",
		Titre:       "Fuite cuisine",
		Description: "Fuite sous évier",
		Adresse:     "3 rue des Lilas",
		Ville:       "Lyon",
		StatusID:    1,
		TypeID:      1,
		ClientID:    1,
		ChantierID:  1,
	}
}

func TestCreateInterventionUseCase(t *testing.T) {
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("creates with generated token and agency", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewCreateInterventionUseCase(repo, 1, log)

		result, err := uc.Execute(ctx, validCreateCommand())
		require.NoError(t, err)

		assert.Equal(t, uint(42), result.InterventionID)
		assert.Equal(t, "9999", result.PublicNumber)
		assert.Len(t, result.PublicToken, 16)
		assert.Equal(t, uint(1), repo.saved.AgencyID())
		assert.Equal(t, vo.PriorityNormale, repo.saved.Priority())
	})

	t.Run("strips html from free text", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewCreateInterventionUseCase(repo, 1, log)

		cmd := validCreateCommand()
		cmd.Titre = "<b>Fuite</b> cuisine"
		cmd.Description = "Fuite <i>sous évier</i>"

		_, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "Fuite cuisine", repo.saved.Title())
		assert.Equal(t, "Fuite sous évier", repo.saved.Description())
	})

	t.Run("missing required fields fail in french", func(t *testing.T) {
		uc := NewCreateInterventionUseCase(&stubRepo{}, 1, log)

		cmd := validCreateCommand()
		cmd.Titre = ""
		_, err := uc.Execute(ctx, cmd)
		require.True(t, errors.IsValidationError(err))
		assert.Equal(t, "le titre est requis", errors.GetAppError(err).Message)

		cmd = validCreateCommand()
		cmd.Numero = ""
		_, err = uc.Execute(ctx, cmd)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("duplicate number surfaces the conflict", func(t *testing.T) {
		repo := &stubRepo{saveErr: errors.NewConflictError("une intervention avec le numéro 9999 existe déjà")}
		uc := NewCreateInterventionUseCase(repo, 1, log)

		_, err := uc.Execute(ctx, validCreateCommand())
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("legacy date form is accepted", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewCreateInterventionUseCase(repo, 1, log)

		cmd := validCreateCommand()
		cmd.Date = "28/08/2026"
		cmd.Heure = "14:30"

		_, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "28/08/2026 14:30", repo.saved.DateTimeString())
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		uc := NewCreateInterventionUseCase(&stubRepo{}, 1, log)

		cmd := validCreateCommand()
		cmd.Date = "2026-13-45"
		_, err := uc.Execute(ctx, cmd)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestAssignTechnicianUseCase(t *testing.T) {
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("zero ids rejected", func(t *testing.T) {
		uc := NewAssignTechnicianUseCase(&stubRepo{}, log)

		_, err := uc.Execute(ctx, AssignTechnicianCommand{InterventionID: 0, TechnicianID: 1})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(ctx, AssignTechnicianCommand{InterventionID: 1, TechnicianID: 0})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("zero rows is a soft miss", func(t *testing.T) {
		uc := NewAssignTechnicianUseCase(&stubRepo{found: false}, log)

		result, err := uc.Execute(ctx, AssignTechnicianCommand{InterventionID: 7, TechnicianID: 3})
		require.NoError(t, err)
		assert.False(t, result.Found)
	})

	t.Run("updated row reports found", func(t *testing.T) {
		repo := &stubRepo{found: true}
		uc := NewAssignTechnicianUseCase(repo, log)

		result, err := uc.Execute(ctx, AssignTechnicianCommand{InterventionID: 7, TechnicianID: 3})
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, uint(3), repo.assignedTec)
	})
}

func TestAssignDateUseCase(t *testing.T) {
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("accepts both date layouts", func(t *testing.T) {
		repo := &stubRepo{found: true}
		uc := NewAssignDateUseCase(repo, log)

		_, err := uc.Execute(ctx, AssignDateCommand{InterventionID: 1, Date: "28/08/2026", Time: "09:30"})
		require.NoError(t, err)
		assert.Equal(t, "09:30", repo.assignedAt)

		_, err = uc.Execute(ctx, AssignDateCommand{InterventionID: 1, Date: "2026-08-28"})
		require.NoError(t, err)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		uc := NewAssignDateUseCase(&stubRepo{found: true}, log)

		_, err := uc.Execute(ctx, AssignDateCommand{InterventionID: 1, Date: ""})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(ctx, AssignDateCommand{InterventionID: 1, Date: "pas-une-date"})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(ctx, AssignDateCommand{InterventionID: 1, Date: "28/08/2026", Time: "25:99"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListInterventionsUseCase(t *testing.T) {
	log := logger.NewLogger()
	ctx := context.Background()

	t.Run("builds filter from raw query values", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		techID := uint(4)
		_, err := uc.Execute(ctx, ListInterventionsQuery{
			Kind:         intervention.KindUrgentAll,
			Search:       "fuite",
			Status:       "in-progress",
			Missing:      "technicien",
			TimeFilter:   "lt24h",
			Priority:     "Urgente",
			TechnicianID: &techID,
			Page:         2,
			Limit:        10,
		})
		require.NoError(t, err)

		f := repo.lastFilter
		assert.Equal(t, intervention.KindUrgentAll, f.Kind)
		assert.Equal(t, "fuite", f.Search)
		assert.Equal(t, vo.BucketInProgress, f.Status)
		assert.Equal(t, intervention.MissingTechnician, f.Missing)
		assert.Equal(t, intervention.TimeFilterLt24, f.Time)
		assert.Equal(t, vo.PriorityUrgente, f.Priority)
		assert.Equal(t, uint(4), *f.TechnicianID)
		assert.Equal(t, 2, f.Page)
		assert.Equal(t, 10, f.Limit)
	})

	t.Run("caps limit and normalizes page", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		_, err := uc.Execute(ctx, ListInterventionsQuery{Kind: intervention.KindAllRecent, Page: -3, Limit: 5000})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.lastFilter.Page)
		assert.Equal(t, 100, repo.lastFilter.Limit)
	})

	t.Run("unknown filter values degrade to no filter", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		_, err := uc.Execute(ctx, ListInterventionsQuery{
			Kind:       intervention.KindAllRecent,
			Missing:    "n-importe-quoi",
			TimeFilter: "lt3h",
			Priority:   "Extreme",
			Date:       "pas-une-date",
		})
		require.NoError(t, err)

		f := repo.lastFilter
		assert.Equal(t, intervention.MissingNone, f.Missing)
		assert.Equal(t, intervention.TimeFilterNone, f.Time)
		assert.Empty(t, f.Priority)
		assert.Nil(t, f.Date)
	})

	t.Run("computes pagination envelope", func(t *testing.T) {
		repo := &stubRepo{listTotal: 45}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		result, err := uc.Execute(ctx, ListInterventionsQuery{Kind: intervention.KindAllRecent, Page: 2, Limit: 20})
		require.NoError(t, err)

		p := result.Pagination
		assert.Equal(t, 2, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(45), p.TotalCount)
		assert.True(t, p.HasNextPage)
		assert.True(t, p.HasPrevPage)
		assert.Equal(t, 20, p.Limit)
	})

	t.Run("empty result set is page 1 of 1", func(t *testing.T) {
		repo := &stubRepo{listTotal: 0}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		result, err := uc.Execute(ctx, ListInterventionsQuery{Kind: intervention.KindAllRecent})
		require.NoError(t, err)

		p := result.Pagination
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("date presets resolve to ranges", func(t *testing.T) {
		repo := &stubRepo{}
		uc := NewListInterventionsUseCase(repo, biztime.DefaultClock, log)

		_, err := uc.Execute(ctx, ListInterventionsQuery{Kind: intervention.KindAllRecent, Date: "today"})
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Date)
		assert.Equal(t, repo.lastFilter.Date.Start, repo.lastFilter.Date.End)
	})
}

func TestGetStatsUseCase(t *testing.T) {
	log := logger.NewLogger()

	repo := &stubRepo{stats: intervention.Stats{Received: 3, Assigned: 2, Total: 5}}
	uc := NewGetStatsUseCase(repo, log)

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Received)
	assert.Equal(t, int64(2), stats.Assigned)
	assert.Equal(t, int64(5), stats.Total)
}
