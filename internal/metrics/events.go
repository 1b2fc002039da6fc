package metrics

import (
	"context"

	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.WorkCreated,
		event.WorkCompleted,
		event.WorkCancelled,
		event.ReportCreated,
		event.CharacterLevelUp,
		event.CharacterDied,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.WorkCreated:
		p, err := event.DecodePayload[event.WorkPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		WorksCreated.WithLabelValues(p.Kind, p.Type).Inc()

	case event.WorkCompleted:
		p, err := event.DecodePayload[event.WorkPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		WorksCompleted.WithLabelValues(p.Kind, p.Result).Inc()

	case event.WorkCancelled:
		p, err := event.DecodePayload[event.WorkPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		WorksCancelled.WithLabelValues(p.Reason).Inc()

	case event.ReportCreated:
		p, err := event.DecodePayload[event.ReportCreatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		ReportsCreated.WithLabelValues(p.ReportType).Inc()

	case event.CharacterLevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		if gained := p.NewLevel - p.OldLevel; gained > 0 {
			LevelUps.Add(float64(gained))
		}

	case event.CharacterDied:
		Deaths.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
