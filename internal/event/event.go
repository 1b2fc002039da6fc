package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mt2web/mt2web/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// MetadataKeyCharacterID routes an event to the character it concerns
const MetadataKeyCharacterID = "character_id"

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// CharacterID returns the character the event concerns, or "" when unrouted
func (e Event) CharacterID() string {
	id, _ := e.GetMetadataValue(MetadataKeyCharacterID).(string)
	return id
}

// Game event types
const (
	WorkCreated      = Type(domain.EventTypeWorkCreated)
	WorkCompleted    = Type(domain.EventTypeWorkCompleted)
	WorkCancelled    = Type(domain.EventTypeWorkCancelled)
	ReportCreated    = Type(domain.EventTypeReportCreated)
	CharacterLevelUp = Type(domain.EventTypeCharacterLevelUp)
	CharacterDied    = Type(domain.EventTypeCharacterDied)
)

// WorkPayloadV1 is the typed payload of work lifecycle events
type WorkPayloadV1 struct {
	WorkID      string `json:"work_id"`
	CharacterID string `json:"character_id"`
	Kind        string `json:"kind"`
	Type        string `json:"type"`
	Result      string `json:"result,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// ReportCreatedPayloadV1 is the typed payload for report creation events
type ReportCreatedPayloadV1 struct {
	ReportID    string `json:"report_id"`
	CharacterID string `json:"character_id"`
	ReportType  string `json:"report_type"`
	Subject     string `json:"subject"`
	Timestamp   int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	CharacterID string `json:"character_id"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterDiedPayloadV1 is the typed payload for death events
type CharacterDiedPayloadV1 struct {
	CharacterID    string `json:"character_id"`
	CancelledWorks int    `json:"cancelled_works"`
	CashLost       int64  `json:"cash_lost"`
	Timestamp      int64  `json:"timestamp"`
}

func newEvent(t Type, characterID string, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyCharacterID: characterID},
	}
}

// NewWorkCreatedEvent creates a work created event
func NewWorkCreatedEvent(w *domain.Work) Event {
	return newEvent(WorkCreated, w.CharacterID.String(), WorkPayloadV1{
		WorkID:      w.ID.String(),
		CharacterID: w.CharacterID.String(),
		Kind:        string(w.Kind),
		Type:        string(w.Type),
		Timestamp:   time.Now().Unix(),
	})
}

// NewWorkCompletedEvent creates a work completed event. result is empty for sleep.
func NewWorkCompletedEvent(w *domain.Work, result domain.CombatResult) Event {
	return newEvent(WorkCompleted, w.CharacterID.String(), WorkPayloadV1{
		WorkID:      w.ID.String(),
		CharacterID: w.CharacterID.String(),
		Kind:        string(w.Kind),
		Type:        string(w.Type),
		Result:      string(result),
		Timestamp:   time.Now().Unix(),
	})
}

// NewWorkCancelledEvent creates a work cancelled event
func NewWorkCancelledEvent(w *domain.Work, reason string) Event {
	return newEvent(WorkCancelled, w.CharacterID.String(), WorkPayloadV1{
		WorkID:      w.ID.String(),
		CharacterID: w.CharacterID.String(),
		Kind:        string(w.Kind),
		Type:        string(w.Type),
		Reason:      reason,
		Timestamp:   time.Now().Unix(),
	})
}

// NewReportCreatedEvent creates a report created event
func NewReportCreatedEvent(r *domain.Report) Event {
	return newEvent(ReportCreated, r.CharacterID.String(), ReportCreatedPayloadV1{
		ReportID:    r.ID.String(),
		CharacterID: r.CharacterID.String(),
		ReportType:  string(r.Type),
		Subject:     r.Subject,
		Timestamp:   r.CreatedAt.Unix(),
	})
}

// NewLevelUpEvent creates a character level up event
func NewLevelUpEvent(characterID string, oldLevel, newLevel int) Event {
	return newEvent(CharacterLevelUp, characterID, LevelUpPayloadV1{
		CharacterID: characterID,
		OldLevel:    oldLevel,
		NewLevel:    newLevel,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCharacterDiedEvent creates a character died event
func NewCharacterDiedEvent(characterID string, cancelledWorks int, cashLost int64) Event {
	return newEvent(CharacterDied, characterID, CharacterDiedPayloadV1{
		CharacterID:    characterID,
		CancelledWorks: cancelledWorks,
		CashLost:       cashLost,
		Timestamp:      time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the write side of the bus used by services
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop discards every event. Used where no bus is wired.
type Nop struct{}

// Publish does nothing
func (Nop) Publish(context.Context, Event) error { return nil }
