package work

import "time"

// Defaults applied when the service config leaves a field unset
const (
	DefaultTravelSpeed   = 10.0 // map units per second
	DefaultMaxTravelTime = 2 * time.Minute
)

// Cancellation reasons carried on work.cancelled events
const (
	CancelReasonUser  = "user"
	CancelReasonDeath = "death"
)

// createdAtStep keeps creation timestamps strictly increasing within a queue
const createdAtStep = time.Microsecond

// Log messages
const (
	LogMsgWorkCreated           = "Work queued"
	LogMsgWorkStarted           = "Work arrived at target"
	LogMsgWorkCompleted         = "Work completed"
	LogMsgWorkCancelled         = "Work cancelled"
	LogMsgWorkPatched           = "Work patched"
	LogMsgCharacterDied         = "Character died, flushing work queue"
	LogMsgCorruptOpponent       = "Duel opponent snapshot unusable, emitting info report"
	LogMsgMissingTarget         = "Attack work has no target snapshot, emitting info report"
	LogMsgPublishFailed         = "Failed to publish work event"
	LogMsgDuelTallyFailed       = "Failed to update duel opponent counters"
	LogMsgDuelTallyOpponentGone = "Duel opponent no longer exists, counters not updated"
	LogMsgDuelTallyRejected     = "Duel tally job rejected by executor"
)

// Info report texts
const (
	SubjectAttackAborted = "Attack aborted"
	TmplAttackAborted    = "Your queued attack could not take place because its target data was missing."
)
