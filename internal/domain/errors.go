package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identifier errors
	ErrMsgInvalidID = "invalid identifier"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgNameTaken         = "character name is already taken"
	ErrMsgCharacterDead     = "character has no hp left"
	ErrMsgInvalidName       = "invalid character name"

	// Work errors
	ErrMsgWorkNotFound         = "work not found"
	ErrMsgWorkQueueFull        = "work queue is full"
	ErrMsgInsufficientStamina  = "insufficient stamina"
	ErrMsgInvalidWorkType      = "invalid work type"
	ErrMsgInvalidWorkKind      = "invalid work kind"
	ErrMsgInvalidWorkPatch     = "invalid work update"
	ErrMsgMobNotFound          = "mob not found"
	ErrMsgOpponentNotFound     = "opponent not found"
	ErrMsgInvalidOpponent      = "invalid opponent"
	ErrMsgCorruptOpponentState = "opponent snapshot is corrupted"

	// Report errors
	ErrMsgReportNotFound = "report not found"

	// Equipment errors
	ErrMsgInvalidSlot      = "invalid equipment slot"
	ErrMsgInvalidStatDelta = "invalid stat bonus"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Auth errors
	ErrMsgForbidden = "forbidden"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidID = errors.New(ErrMsgInvalidID)

	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrNameTaken         = errors.New(ErrMsgNameTaken)
	ErrCharacterDead     = errors.New(ErrMsgCharacterDead)
	ErrInvalidName       = errors.New(ErrMsgInvalidName)

	// Work errors
	ErrWorkNotFound         = errors.New(ErrMsgWorkNotFound)
	ErrWorkQueueFull        = errors.New(ErrMsgWorkQueueFull)
	ErrInsufficientStamina  = errors.New(ErrMsgInsufficientStamina)
	ErrInvalidWorkType      = errors.New(ErrMsgInvalidWorkType)
	ErrInvalidWorkKind      = errors.New(ErrMsgInvalidWorkKind)
	ErrInvalidWorkPatch     = errors.New(ErrMsgInvalidWorkPatch)
	ErrMobNotFound          = errors.New(ErrMsgMobNotFound)
	ErrOpponentNotFound     = errors.New(ErrMsgOpponentNotFound)
	ErrInvalidOpponent      = errors.New(ErrMsgInvalidOpponent)
	ErrCorruptOpponentState = errors.New(ErrMsgCorruptOpponentState)

	// Report errors
	ErrReportNotFound = errors.New(ErrMsgReportNotFound)

	// Equipment errors
	ErrInvalidSlot      = errors.New(ErrMsgInvalidSlot)
	ErrInvalidStatDelta = errors.New(ErrMsgInvalidStatDelta)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrForbidden = errors.New(ErrMsgForbidden)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
