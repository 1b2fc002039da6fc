package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mt2web/mt2web/internal/domain"
)

type enumStruct struct {
	Kind   string `validate:"work_kind"`
	Type   string `validate:"work_type"`
	Report string `validate:"report_type"`
}

func TestValidator_Enums(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   enumStruct
		wantErr bool
	}{
		{"all valid", enumStruct{Kind: "attack", Type: "15s", Report: "duel"}, false},
		{"empty values pass without required", enumStruct{}, false},
		{"kind is case sensitive", enumStruct{Kind: "Attack"}, true},
		{"unknown type", enumStruct{Type: "30s"}, true},
		{"unknown report type", enumStruct{Report: "mail"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CharacterName(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "Warrior", false},
		{"digits and underscore", "war_rior_99", false},
		{"surrounding spaces trimmed", "  Warrior ", false},
		{"too short", "ab", true},
		{"too long", "abcdefghijklmnopq", true},
		{"inner space", "war rior", true},
		{"punctuation", "war!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(CreateCharacterRequest{Name: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(CreateWorkRequest{Kind: "attack", Type: "2h"})
	fields := FormatValidationError(err)

	assert.Equal(t, "This field is required", fields["mobid"])
	assert.Equal(t, "Must be one of: 15s, 10m, 1h", fields["type"])
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(errors.New("boom"))["error"])
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{domain.ErrWorkQueueFull, http.StatusConflict, ErrMsgWorkQueueFullError},
		{domain.ErrInsufficientStamina, http.StatusConflict, ErrMsgNotEnoughStaminaError},
		{domain.ErrCharacterDead, http.StatusConflict, ErrMsgCharacterDeadError},
		{domain.ErrInvalidOpponent, http.StatusBadRequest, ErrMsgInvalidOpponentError},
		{domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
		{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.Equal(t, tt.wantMsg, msg, "%v", tt.err)
	}

	wrapped := errors.Join(errors.New("context"), domain.ErrMobNotFound)
	status, _ := mapServiceErrorToUserMessage(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
}
