package feed

import (
	"context"
	"log/slog"

	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/logger"
)

// ForwardedTypes are the bus events pushed to a character's feed
var ForwardedTypes = []event.Type{
	event.ReportCreated,
	event.CharacterLevelUp,
	event.CharacterDied,
}

// Bridge forwards bus events to the hub
type Bridge struct {
	hub *Hub
	bus event.Bus
}

// NewBridge creates a bridge between bus and hub
func NewBridge(hub *Hub, bus event.Bus) *Bridge {
	return &Bridge{hub: hub, bus: bus}
}

// Subscribe registers the bridge on every forwarded event type
func (b *Bridge) Subscribe() {
	names := make([]string, 0, len(ForwardedTypes))
	for _, t := range ForwardedTypes {
		b.bus.Subscribe(t, b.handle)
		names = append(names, string(t))
	}
	slog.Info(LogMsgBridgeRegistered, "types", names)
}

func (b *Bridge) handle(ctx context.Context, evt event.Event) error {
	characterID := evt.CharacterID()
	if characterID == "" {
		logger.FromContext(ctx).Warn(LogMsgMissingCharacter, "type", evt.Type)
		return nil
	}

	b.hub.Send(characterID, string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "type", evt.Type, "character_id", characterID)
	return nil
}
