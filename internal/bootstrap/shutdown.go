package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/tinklepaw-gacha/internal/database"
)

// Stopper is a server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// BackgroundJobs is a scheduler whose jobs must end before the pool closes
type BackgroundJobs interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler BackgroundJobs
	DBPool    database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight draws can finish
// against the database, then stops background jobs and closes the pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
