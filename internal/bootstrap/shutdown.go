package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BrandishPet_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	App    *App
}

// GracefulShutdown stops components in order:
// 1. Event streams (so open SSE connections go idle)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler and workers (no more decay ticks)
// 4. Pets (final save of every live pet)
// 5. Storage (close connections)
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.App != nil && components.App.Events != nil {
		components.App.Events.Stop()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
		slog.Info(LogMsgServerStopped)
	}

	if app := components.App; app != nil {
		app.stopWorkers()
		if err := app.Manager.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPetShutdownFailed, "error", err)
		}
		if err := app.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
