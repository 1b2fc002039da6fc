package bootstrap

import (
	"log/slog"

	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/feed"
	"github.com/mt2web/mt2web/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	FeedHub  *feed.Hub
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// given, the bridge that pushes reports and character events to live feeds.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.FeedHub != nil {
		feed.NewBridge(deps.FeedHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgFeedBridgeRegistered)
	}
}
