package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "work.completed")
const (
	// EventTypeWorkCreated is published when a character queues a work
	EventTypeWorkCreated = "work.created"

	// EventTypeWorkCompleted is published when a work's job phase has been resolved
	EventTypeWorkCompleted = "work.completed"

	// EventTypeWorkCancelled is published when a queued work is removed early
	EventTypeWorkCancelled = "work.cancelled"

	// EventTypeReportCreated is published for every persisted report
	EventTypeReportCreated = "report.created"

	// EventTypeCharacterLevelUp is published when experience pushes a character up one or more levels
	EventTypeCharacterLevelUp = "character.level_up"

	// EventTypeCharacterDied is published when combat leaves a character at zero hp
	EventTypeCharacterDied = "character.died"
)
