package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to players
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgForbiddenError     = "You cannot act on behalf of that character"

	// Character messages
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgNameTakenError         = "That name is already taken"
	ErrMsgInvalidNameError       = "Names are 3-16 letters, digits or underscores"
	ErrMsgCharacterDeadError     = "You are dead. Only sleep is possible until you recover"

	// Work messages
	ErrMsgWorkNotFoundError       = "Work not found"
	ErrMsgWorkQueueFullError      = "You cannot queue more than three works"
	ErrMsgNotEnoughStaminaError   = "Not enough stamina"
	ErrMsgInvalidWorkTypeError    = "Unknown work type"
	ErrMsgInvalidWorkKindError    = "Unknown work kind"
	ErrMsgInvalidWorkPatchError   = "Invalid work update"
	ErrMsgMobNotFoundError        = "Mob not found"
	ErrMsgOpponentNotFoundError   = "Opponent not found"
	ErrMsgInvalidOpponentError    = "You cannot duel yourself"
	ErrMsgReportNotFoundError     = "Report not found"
	ErrMsgInvalidSlotError        = "Unknown equipment slot"
	ErrMsgInvalidStatDeltaError   = "Equipment bonus out of range"
	ErrMsgNotEnoughMoneyError     = "Not enough money"
	ErrMsgAmountMustBePositiveErr = "Amount must be positive"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrWorkNotFound):
		return http.StatusNotFound, ErrMsgWorkNotFoundError
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, ErrMsgReportNotFoundError
	case errors.Is(err, domain.ErrMobNotFound):
		return http.StatusNotFound, ErrMsgMobNotFoundError
	case errors.Is(err, domain.ErrOpponentNotFound):
		return http.StatusNotFound, ErrMsgOpponentNotFoundError
	case errors.Is(err, domain.ErrNameTaken):
		return http.StatusConflict, ErrMsgNameTakenError
	case errors.Is(err, domain.ErrWorkQueueFull):
		return http.StatusConflict, ErrMsgWorkQueueFullError
	case errors.Is(err, domain.ErrCharacterDead):
		return http.StatusConflict, ErrMsgCharacterDeadError
	case errors.Is(err, domain.ErrInsufficientStamina):
		return http.StatusConflict, ErrMsgNotEnoughStaminaError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, domain.ErrInvalidWorkType):
		return http.StatusBadRequest, ErrMsgInvalidWorkTypeError
	case errors.Is(err, domain.ErrInvalidWorkKind):
		return http.StatusBadRequest, ErrMsgInvalidWorkKindError
	case errors.Is(err, domain.ErrInvalidWorkPatch):
		return http.StatusBadRequest, ErrMsgInvalidWorkPatchError
	case errors.Is(err, domain.ErrInvalidOpponent):
		return http.StatusBadRequest, ErrMsgInvalidOpponentError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrInvalidStatDelta):
		return http.StatusBadRequest, ErrMsgInvalidStatDeltaError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgAmountMustBePositiveErr
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	}

	// Database and unknown failures never leak their details
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
