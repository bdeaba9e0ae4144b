package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	directoryApp "intervia/internal/application/directory"
	"intervia/internal/application/intervention/usecases"
	"intervia/internal/infrastructure/config"
	"intervia/internal/infrastructure/database"
	"intervia/internal/infrastructure/migration"
	"intervia/internal/infrastructure/repository"
	httpRouter "intervia/internal/interfaces/http"
	directoryhandlers "intervia/internal/interfaces/http/handlers/directory"
	interventionhandlers "intervia/internal/interfaces/http/handlers/intervention"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/constants"
	"intervia/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Intervia HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Load keeps the raw env name in server.mode; gin only accepts
	// debug/release/test, so the mapped mode always wins.
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"agency_id", cfg.Business.AgencyID,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(env); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	clock := biztime.SLAClock{
		WindowHours:  cfg.Business.SLAWindowHours,
		ExactWeekend: cfg.Business.ExactWeekendAccounting,
	}
	if clock.WindowHours <= 0 {
		clock.WindowHours = biztime.DefaultSLAWindowHours
	}

	log := logger.NewLogger()

	interventionRepo := repository.NewInterventionRepository(database.Get(), cfg.Business.AgencyID, clock)
	directoryRepo := repository.NewDirectoryRepository(database.Get())

	interventionHandler := interventionhandlers.NewHandler(
		usecases.NewCreateInterventionUseCase(interventionRepo, cfg.Business.AgencyID, log),
		usecases.NewListInterventionsUseCase(interventionRepo, clock, log),
		usecases.NewGetStatsUseCase(interventionRepo, log),
		usecases.NewAssignTechnicianUseCase(interventionRepo, log),
		usecases.NewAssignDateUseCase(interventionRepo, log),
		usecases.NewGetInterventionUseCase(interventionRepo, clock, log),
		usecases.NewDeleteInterventionUseCase(interventionRepo, log),
	)
	directoryHandler := directoryhandlers.NewHandler(directoryApp.NewService(directoryRepo, log))

	engine := httpRouter.NewRouter(&httpRouter.RouterConfig{
		Mode:                cfg.Server.Mode,
		AllowedOrigins:      cfg.Server.AllowedOrigins,
		InterventionHandler: interventionHandler,
		DirectoryHandler:    directoryHandler,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(environment string) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == constants.EnvProduction {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}

		logger.Info("running auto-migration")
		migrationManager := migration.NewManager(environment)
		if err := migrationManager.Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
		return nil
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	if gooseStrategy, ok := strategy.(*migration.GooseStrategy); ok {
		version, err := gooseStrategy.GetVersion(database.Get())
		if err != nil {
			logger.Warn("failed to check migration status", "error", err)
		} else {
			logger.Info("current migration version", "version", version)
		}
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
