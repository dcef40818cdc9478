package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/bootstrap"
	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve the HTTP API and keep live pets decaying",
	Long: `Run keeps pets in memory, applies mood decay on every tick and serves
/healthz, /readyz, /version, /metrics, the /api/v1 pet and shop routes and
per-pet event streams at /api/v1/pets/{id}/events.
The pet selected by --entity is loaded at startup; others load on first request.
Other commands may change the same pets while run is active; live pets pick up
those saves before their next operation or decay tick.`,
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, bootstrap.AppOptions{Background: true})
	if err != nil {
		return err
	}

	if _, err := app.Manager.Get(ctx, entityID); err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{App: app})
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Pets:           app.Manager,
		Catalog:        app.Catalog,
		Ready:          app.Storage,
		Events:         app.Events,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, App: app})

	return err
}
