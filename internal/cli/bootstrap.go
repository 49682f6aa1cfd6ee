package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"horas-api/internal/repository"
	"horas-api/internal/service"
)

// BootstrapCmd returns the bootstrap command
func BootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the database, its tables and the seed roles, then exit",
		RunE:  runBootstrap,
	}
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := cmd.Context()
	if err := repository.EnsureSchema(ctx, cfg, logger); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db, err := repository.NewMySQLDB(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	cargos := service.NewCargoService(repository.NewCargoRepository(db, cfg.QueryTimeout(), logger), logger)
	inserted, err := cargos.Seed(ctx, cfg.Seed.Cargos)
	if err != nil {
		return err
	}
	logger.Sugar().Infof("Bootstrap complete, %d cargos seeded", inserted)
	return nil
}
