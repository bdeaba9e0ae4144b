package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"intervia/internal/domain/intervention"
	"intervia/internal/infrastructure/persistence/models"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/errors"
)

// testNow is Wednesday 2026-08-26 15:00 UTC. The 48 business-hour window
// reaching back from it opens Monday 2026-08-24 15:00 UTC.
var testNow = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.InterventionModel{},
		&models.ClientModel{},
		&models.TechnicianModel{},
		&models.ChantierModel{},
		&models.InterventionStatusModel{},
		&models.InterventionTypeModel{},
	)
	require.NoError(t, err)

	return db
}

func seedLookups(t *testing.T, db *gorm.DB) {
	statuses := []models.InterventionStatusModel{
		{UID: 1, Name: "Reçue"},
		{UID: 2, Name: "Affectée"},
		{UID: 3, Name: "En cours"},
		{UID: 4, Name: "Terminée"},
		{UID: 5, Name: "Annulée"},
		{UID: 6, Name: "Facturée"},
		{UID: 7, Name: "Payée"},
	}
	require.NoError(t, db.Create(&statuses).Error)

	types := []models.InterventionTypeModel{
		{UID: 1, Name: "Plomberie"},
		{UID: 2, Name: "Électricité"},
	}
	require.NoError(t, db.Create(&types).Error)

	technicians := []models.TechnicianModel{
		{UID: 1, Firstname: "Jean", Lastname: "Dupont"},
		{UID: 2, Firstname: "Marie", Lastname: "Martin"},
	}
	require.NoError(t, db.Create(&technicians).Error)

	clients := []models.ClientModel{{UID: 1, Name: "SCI Les Lilas"}}
	require.NoError(t, db.Create(&clients).Error)

	chantiers := []models.ChantierModel{{UID: 1, Name: "Résidence Les Lilas"}}
	require.NoError(t, db.Create(&chantiers).Error)
}

func techID(id uint) *uint { return &id }

func seedInterventions(t *testing.T, db *gorm.DB) {
	scheduled := time.Date(2026, 8, 27, 0, 0, 0, 0, biztime.Location()).UTC()

	rows := []models.InterventionModel{
		{
			UID: 1, Number: "INT-001", PublicToken: "tok0000000000001", Title: "Fuite cuisine",
			Description: "Fuite sous évier", Address: "3 rue des Lilas", City: "Lyon",
			Priority: "Urgente", StatusID: 1, TypeID: 1, ClientID: 1, ChantierID: 1,
			AgencyID: 1, CreatedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		},
		{
			UID: 2, Number: "INT-002", PublicToken: "tok0000000000002", Title: "Panne chauffage",
			Description: "Chaudière en panne", Address: "10 avenue Foch", City: "Paris",
			Priority: "Normale", StatusID: 2, TypeID: 1, ClientID: 1, ChantierID: 1,
			TechnicianID: techID(1),
			AgencyID:     1, CreatedAt: time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC),
		},
		{
			UID: 3, Number: "INT-003", PublicToken: "tok0000000000003", Title: "Volet bloqué",
			Description: "Volet roulant bloqué", Address: "5 rue Pasteur", City: "Lille",
			Priority: "Normale", StatusID: 3, TypeID: 2, ClientID: 1, ChantierID: 1,
			TechnicianID: techID(2), ScheduledOn: &scheduled, ScheduledTime: "14:30",
			AgencyID: 1, CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		},
		{
			UID: 4, Number: "INT-004", PublicToken: "tok0000000000004", Title: "Serrure cassée",
			Description: "Serrure à remplacer", Address: "8 rue Hugo", City: "Nantes",
			Priority: "Normale", StatusID: 5, TypeID: 2, ClientID: 1, ChantierID: 1,
			AgencyID: 1, CreatedAt: time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC),
		},
		{
			UID: 5, Number: "INT-005", PublicToken: "tok0000000000005", Title: "Peinture hall",
			Description: "Reprise peinture", Address: "1 place Bellecour", City: "Lyon",
			Priority: "Normale", StatusID: 4, TypeID: 2, ClientID: 1, ChantierID: 1,
			AgencyID: 1, CreatedAt: time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			UID: 6, Number: "INT-006", PublicToken: "tok0000000000006", Title: "Autre agence",
			Description: "Hors périmètre", Address: "2 rue du Port", City: "Brest",
			Priority: "Normale", StatusID: 1, TypeID: 1, ClientID: 1, ChantierID: 1,
			AgencyID: 2, CreatedAt: time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, db.Create(&rows).Error)

	// Legacy sentinel row. gorm would treat uid 0 as "assign me", so raw SQL.
	err := db.Exec(
		"INSERT INTO interventions (uid, number, public_token, title, description, priority, status_id, type_id, client_id, chantier_id, agency_id, created_at, updated_at) "+
			"VALUES (0, 'INT-000', 'tok0000000000000', 'Sentinel', 'Ligne technique', 'Normale', 1, 1, 1, 1, 1, ?, ?)",
		time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC),
	).Error
	require.NoError(t, err)
}

func setupListRepo(t *testing.T) *InterventionRepository {
	db := setupTestDB(t)
	seedLookups(t, db)
	seedInterventions(t, db)
	return NewInterventionRepository(db, 1, biztime.DefaultClock)
}

func listUIDs(items []intervention.ListItem) []uint {
	uids := make([]uint, 0, len(items))
	for _, item := range items {
		uids = append(uids, item.Intervention.UID())
	}
	return uids
}

func baseFilter(kind intervention.ListKind) intervention.ListFilter {
	return intervention.ListFilter{Kind: kind, Page: 1, Limit: 20}
}

func TestInterventionRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	seedLookups(t, db)
	repo := NewInterventionRepository(db, 1, biztime.DefaultClock)
	ctx := context.Background()

	newIntervention := func(number, token string) *intervention.Intervention {
		iv, err := intervention.NewIntervention(intervention.NewInterventionParams{
			Number:      number,
			PublicToken: token,
			Title:       "Fuite salle de bain",
			Description: "Joint de baignoire à refaire",
			Address:     "12 rue de la République",
			City:        "Lyon",
			StatusID:    1,
			TypeID:      1,
			ClientID:    1,
			ChantierID:  1,
			AgencyID:    1,
		})
		require.NoError(t, err)
		return iv
	}

	t.Run("save assigns uid and find joins display names", func(t *testing.T) {
		iv := newIntervention("INT-100", "tokaaaaaaaaaaaa1")
		require.NoError(t, repo.Save(ctx, iv))
		assert.NotZero(t, iv.UID())

		found, err := repo.FindByNumber(ctx, "INT-100")
		require.NoError(t, err)
		assert.Equal(t, "INT-100", found.Intervention.Number())
		assert.Equal(t, "Reçue", found.StatusName)
		assert.Equal(t, "Plomberie", found.TypeName)
		assert.Equal(t, "", found.TechnicianName)
	})

	t.Run("find by token", func(t *testing.T) {
		iv := newIntervention("INT-101", "tokaaaaaaaaaaaa2")
		require.NoError(t, repo.Save(ctx, iv))

		found, err := repo.FindByToken(ctx, "tokaaaaaaaaaaaa2")
		require.NoError(t, err)
		assert.Equal(t, "INT-101", found.Intervention.Number())
	})

	t.Run("unknown number is not found", func(t *testing.T) {
		_, err := repo.FindByNumber(ctx, "INT-999")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		first := newIntervention("INT-102", "tokaaaaaaaaaaaa3")
		require.NoError(t, repo.Save(ctx, first))

		dup := newIntervention("INT-102", "tokaaaaaaaaaaaa4")
		err := repo.Save(ctx, dup)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestInterventionRepository_Assign(t *testing.T) {
	repo := setupListRepo(t)
	ctx := context.Background()

	t.Run("assign technician reports affected row", func(t *testing.T) {
		ok, err := repo.AssignTechnician(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.FindByNumber(ctx, "INT-001")
		require.NoError(t, err)
		require.NotNil(t, found.Intervention.TechnicianID())
		assert.Equal(t, uint(2), *found.Intervention.TechnicianID())
		assert.Equal(t, "Marie Martin", found.TechnicianName)
	})

	t.Run("assign technician on unknown row is a soft miss", func(t *testing.T) {
		ok, err := repo.AssignTechnician(ctx, 9999, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("assign technician cannot cross agencies", func(t *testing.T) {
		ok, err := repo.AssignTechnician(ctx, 6, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("assign schedule stores day and time", func(t *testing.T) {
		on := time.Date(2026, 8, 28, 11, 45, 0, 0, biztime.Location())
		ok, err := repo.AssignSchedule(ctx, 1, on, "09:30")
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.FindByNumber(ctx, "INT-001")
		require.NoError(t, err)
		require.NotNil(t, found.Intervention.ScheduledOn())
		assert.Equal(t, "28/08/2026 09:30", found.Intervention.DateTimeString())
	})

	t.Run("delete reports affected row", func(t *testing.T) {
		ok, err := repo.Delete(ctx, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, 5)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestInterventionRepository_List(t *testing.T) {
	repo := setupListRepo(t)
	ctx := context.Background()

	t.Run("urgent keeps only open in-window rows with missing info", func(t *testing.T) {
		items, total, err := repo.List(ctx, baseFilter(intervention.KindUrgentAll), testNow)
		require.NoError(t, err)

		// 3 is fully staffed, 4 is cancelled, 5 is outside the window,
		// 6 belongs to another agency and 0 is the sentinel.
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []uint{1, 2}, listUIDs(items))
	})

	t.Run("recent defaults to newest first", func(t *testing.T) {
		items, total, err := repo.List(ctx, baseFilter(intervention.KindAllRecent), testNow)
		require.NoError(t, err)

		assert.Equal(t, int64(5), total)
		assert.Equal(t, []uint{4, 3, 2, 1, 5}, listUIDs(items))
	})

	t.Run("search matches technician full name", func(t *testing.T) {
		filter := baseFilter(intervention.KindFiltered)
		filter.Search = "dupont"

		items, total, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []uint{2}, listUIDs(items))
	})

	t.Run("status bucket filter resolves lookup names", func(t *testing.T) {
		filter := baseFilter(intervention.KindFiltered)
		filter.Status = "completed"

		items, _, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Equal(t, []uint{5}, listUIDs(items))
	})

	t.Run("unknown status bucket matches nothing", func(t *testing.T) {
		filter := baseFilter(intervention.KindFiltered)
		filter.Status = "archived"

		items, total, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, total)
	})

	t.Run("missing technician includes null and zero", func(t *testing.T) {
		filter := baseFilter(intervention.KindFiltered)
		filter.Missing = intervention.MissingTechnician

		items, _, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Equal(t, []uint{4, 1, 5}, listUIDs(items))
	})

	t.Run("date range matches scheduled day", func(t *testing.T) {
		day := time.Date(2026, 8, 27, 0, 0, 0, 0, biztime.Location())
		filter := baseFilter(intervention.KindFiltered)
		filter.Date = &intervention.DateRange{Start: day, End: day}

		items, _, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Equal(t, []uint{3}, listUIDs(items))
	})

	t.Run("sort whitelist orders by title", func(t *testing.T) {
		filter := baseFilter(intervention.KindFiltered)
		filter.SortBy = "title"
		filter.SortOrder = "asc"

		items, _, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		// Fuite cuisine, Panne chauffage, Peinture hall, Serrure cassée, Volet bloqué
		assert.Equal(t, []uint{1, 2, 5, 4, 3}, listUIDs(items))
	})

	t.Run("unknown sort field falls back to kind default", func(t *testing.T) {
		filter := baseFilter(intervention.KindAllRecent)
		filter.SortBy = "uid; DROP TABLE interventions"

		items, _, err := repo.List(ctx, filter, testNow)
		require.NoError(t, err)
		assert.Equal(t, []uint{4, 3, 2, 1, 5}, listUIDs(items))

		var count int64
		require.NoError(t, repo.db.Table("interventions").Count(&count).Error)
		assert.Equal(t, int64(7), count)
	})

	t.Run("pages concatenate to the full ordered list", func(t *testing.T) {
		full, total, err := repo.List(ctx, baseFilter(intervention.KindAllRecent), testNow)
		require.NoError(t, err)

		var pages []uint
		for page := 1; ; page++ {
			filter := baseFilter(intervention.KindAllRecent)
			filter.Page = page
			filter.Limit = 2

			items, pageTotal, err := repo.List(ctx, filter, testNow)
			require.NoError(t, err)
			assert.Equal(t, total, pageTotal)
			if len(items) == 0 {
				break
			}
			pages = append(pages, listUIDs(items)...)
		}

		assert.Equal(t, listUIDs(full), pages)
	})
}

func TestInterventionRepository_Stats(t *testing.T) {
	repo := setupListRepo(t)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	// Annulée does not classify into any bucket and falls back to assigned.
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(1), stats.Received)
	assert.Equal(t, int64(2), stats.Assigned)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(0), stats.Billed)
	assert.Equal(t, int64(0), stats.Paid)
}

func TestDirectoryRepository(t *testing.T) {
	db := setupTestDB(t)
	seedLookups(t, db)
	repo := NewDirectoryRepository(db)
	ctx := context.Background()

	technicians, err := repo.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, technicians, 2)
	assert.Equal(t, "Jean Dupont", technicians[0].FullName())

	statuses, err := repo.ListStatuses(ctx)
	require.NoError(t, err)
	assert.Len(t, statuses, 7)

	chantiers, err := repo.ListChantiers(ctx)
	require.NoError(t, err)
	require.Len(t, chantiers, 1)
	assert.Equal(t, "Résidence Les Lilas", chantiers[0].Name)
}
