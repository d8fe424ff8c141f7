package migration

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/model"
)

// Manager runs schema migrations at startup
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date for every model
func (m *Manager) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	err := m.db.AutoMigrate(
		&model.User{},
		&model.MusicTrack{},
		&model.Partner{},
		&model.AdminAction{},
		&model.Session{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.logger.Info("Database migrations complete", nil)
	return nil
}
