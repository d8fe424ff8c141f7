package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	adminUseCase "github.com/pr-poehali-dev/mini-games-creator/internal/domain/usecase/admin"
	authUseCase "github.com/pr-poehali-dev/mini-games-creator/internal/domain/usecase/auth"

	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/handler"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/routes"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/database"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/database/migration"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/logger"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/repository"
	timeProvider "github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/time"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	// Run migrations
	migrationMgr := migration.NewManager(db, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	trackRepo := repository.NewMusicTrackRepository(db, appLogger)
	partnerRepo := repository.NewPartnerRepository(db, appLogger)
	auditRepo := repository.NewAdminActionRepository(db, appLogger)
	sessionRepo := repository.NewSessionRepository(db, appLogger)

	// Initialize use cases
	authUC := authUseCase.NewAuthUseCase(userRepo, sessionRepo, cfg.Session.TTL, tp, appLogger)
	adminUC := adminUseCase.NewAdminUseCase(userRepo, trackRepo, partnerRepo, auditRepo, sessionRepo, tp, appLogger)

	// Seed the default admin account
	err = migration.SeedDefaultAdmin(
		context.Background(),
		authUC,
		userRepo,
		cfg.Admin.Username,
		cfg.Admin.Email,
		cfg.Admin.Password,
		appLogger,
	)
	if err != nil {
		appLogger.Error("Failed to seed default admin", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authUC, appLogger)
	adminHandler := handler.NewAdminHandler(adminUC, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares and routes
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, adminHandler, adminUC)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// The database is reachable either through a full DSN or through the
	// individual fields
	if cfg.Database.URL == "" {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or DATABASE_URL environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or DATABASE_URL environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or DATABASE_URL environment variable)")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Session.TTL == 0 {
		missingConfigs = append(missingConfigs, "session.ttl")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production && cfg.Admin.Password == "" {
		log.Printf("Warning: no admin.password configured, default admin seeding will be skipped")
	}

	return nil
}
