package database

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
)

// Manager owns the database connection for the lifetime of the process
type Manager struct {
	config     *Config
	logger     coreport.Logger
	connection *Connection
}

// NewManager creates a database manager with the given configuration
func NewManager(config *Config, logger coreport.Logger) *Manager {
	return &Manager{
		config: config,
		logger: logger,
	}
}

// Connect establishes the connection and configures the pool
func (m *Manager) Connect() (*gorm.DB, error) {
	if m.connection != nil {
		return m.connection.DB, nil
	}

	conn, err := NewConnection(m.config, m.logger)
	if err != nil {
		return nil, err
	}
	m.connection = conn

	m.logger.Info("Database connected", map[string]any{
		"database":       m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
	})

	return conn.DB, nil
}

// DB returns the live database handle. Connect must have succeeded first.
func (m *Manager) DB() *gorm.DB {
	if m.connection == nil {
		panic("database manager: DB() called before Connect()")
	}
	return m.connection.DB
}

// Close releases the connection pool
func (m *Manager) Close() error {
	if m.connection == nil {
		return nil
	}

	if err := m.connection.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	m.connection = nil
	m.logger.Info("Database connection closed", nil)
	return nil
}
