package migration

import (
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"intervia/internal/shared/constants"
	"intervia/internal/shared/logger"
)

// Manager picks the migration strategy for the environment: gorm
// auto-migration in development, goose SQL scripts everywhere else.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment, "dev", "":
		strategy = NewGormAutoMigrateStrategy()
	default:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	return m.strategy.Migrate(db, models...)
}
