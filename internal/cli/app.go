package cli

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"horas-api/internal/config"
	"horas-api/internal/logging"
	"horas-api/internal/repository"
	"horas-api/internal/service"
)

// loadApp reads the configuration named by --config and builds the logger.
func loadApp(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration loaded", zap.Stringer("config", cfg))
	return cfg, logger, nil
}

// ensureSchema creates the database and tables. With fail-fast disabled a
// failure is logged and startup continues.
func ensureSchema(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	err := repository.EnsureSchema(ctx, cfg, logger)
	if err == nil {
		return nil
	}
	if cfg.BootstrapFailFast() {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Error("Failed to initialize database, continuing", zap.Error(err))
	return nil
}

// connectDB opens the shared pool. With fail-fast disabled an unreachable
// database is logged and a lazy pool is returned instead: the server starts,
// and /ping and store-backed requests answer 503 until MySQL is up.
func connectDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := repository.NewMySQLDB(ctx, cfg, logger)
	if err == nil {
		return db, nil
	}
	if cfg.BootstrapFailFast() {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Error("Database unreachable, serving without it until it comes up", zap.Error(err))
	return repository.OpenMySQLDB(cfg)
}

func seedCargos(ctx context.Context, cargos service.CargoService, cfg *config.Config, logger *zap.Logger) {
	if _, err := cargos.Seed(ctx, cfg.Seed.Cargos); err != nil {
		logger.Warn("Failed to seed cargos", zap.Error(err))
	}
}
