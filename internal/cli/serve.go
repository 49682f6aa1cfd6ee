package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"horas-api/internal/repository"
	"horas-api/internal/server"
	"horas-api/internal/service"
)

// ServeCmd returns the serve command, also run when no subcommand is given.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Prepare the database and run the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ensureSchema(ctx, cfg, logger); err != nil {
		return err
	}

	db, err := connectDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	cargos := service.NewCargoService(repository.NewCargoRepository(db, cfg.QueryTimeout(), logger), logger)
	seedCargos(ctx, cargos, cfg, logger)

	srv, err := server.NewServer(db, cfg, logger)
	if err != nil {
		return err
	}
	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("Application stopped.")
	return nil
}

