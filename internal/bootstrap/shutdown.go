package bootstrap

import (
	"context"
	"log/slog"

	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/feed"
	"github.com/mt2web/mt2web/internal/server"
	"github.com/mt2web/mt2web/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	WorkerPool         *worker.Pool
	FeedHub            *feed.Hub
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// 1. Feed hub (end live streams so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Worker pool (finish queued follow-up jobs, which may still publish)
// 4. Event publisher (flush pending events)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.FeedHub != nil {
		slog.Info(LogMsgShuttingDownFeed)
		components.FeedHub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
