package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/character"
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/logger"
)

type CharacterHandler struct {
	service character.Service
}

func NewCharacterHandler(service character.Service) *CharacterHandler {
	return &CharacterHandler{service: service}
}

type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,character_name"`
}

type BankRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

type EquipRequest struct {
	Attack     int `json:"attack" validate:"min=-1000,max=1000"`
	Defense    int `json:"defense" validate:"min=-1000,max=1000"`
	MaxHP      int `json:"max_hp" validate:"min=-1000,max=1000"`
	MaxStamina int `json:"max_stamina" validate:"min=-1000,max=1000"`
}

// HandleCreate registers a new character
// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character name"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters [post]
func (h *CharacterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
		return
	}

	c, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateCharacterFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

// HandleList pages through characters
// @Summary List characters
// @Tags characters
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Character
// @Router /api/v1/characters [get]
func (h *CharacterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", character.DefaultListLimit)
	if !ok {
		return
	}
	offset, ok := GetOptionalIntQueryParam(r, w, "offset", 0)
	if !ok {
		return
	}

	characters, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		respondServiceError(w, r, ErrMsgListCharactersFailed, err)
		return
	}
	if characters == nil {
		characters = []domain.Character{}
	}

	respondJSON(w, http.StatusOK, characters)
}

// HandleGet returns one character
// @Summary Get character
// @Tags characters
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [get]
func (h *CharacterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleGetByName looks a character up by name, falling back to a case-insensitive match
// @Summary Get character by name
// @Tags characters
// @Produce json
// @Param name path string true "Character name"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/by-name/{name} [get]
func (h *CharacterHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	c, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleDelete removes a character along with its works and reports
// @Summary Delete character
// @Tags admin
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/characters/{id} [delete]
func (h *CharacterHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, ErrMsgDeleteCharacterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
}

// HandleDeposit moves cash into the bank
// @Summary Deposit cash
// @Tags bank
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body BankRequest true "Amount"
// @Success 200 {object} domain.Character
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/bank/deposit [post]
func (h *CharacterHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	h.handleBank(w, r, "Deposit", ErrMsgDepositFailed, h.service.Deposit)
}

// HandleWithdraw moves money from the bank back into cash
// @Summary Withdraw from bank
// @Tags bank
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body BankRequest true "Amount"
// @Success 200 {object} domain.Character
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/bank/withdraw [post]
func (h *CharacterHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleBank(w, r, "Withdraw", ErrMsgWithdrawFailed, h.service.Withdraw)
}

func (h *CharacterHandler) handleBank(
	w http.ResponseWriter,
	r *http.Request,
	actionName string,
	failMsg string,
	action func(context.Context, uuid.UUID, int64) (*domain.Character, error),
) {
	id, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	var req BankRequest
	if err := DecodeAndValidateRequest(r, w, &req, actionName); err != nil {
		return
	}

	c, err := action(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, failMsg, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleEquip sets the stat bonus of an equipment slot
// @Summary Equip slot
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param slot path string true "Equipment slot"
// @Param request body EquipRequest true "Stat bonus"
// @Success 200 {object} domain.Character
// @Router /api/v1/characters/{id}/equipment/{slot} [put]
func (h *CharacterHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	slot, err := domain.ParseEquipmentSlot(chi.URLParam(r, "slot"))
	if err != nil {
		respondServiceError(w, r, ErrMsgEquipFailed, err)
		return
	}

	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip"); err != nil {
		return
	}

	c, err := h.service.Equip(r.Context(), id, slot, domain.StatDelta{
		Attack:     req.Attack,
		Defense:    req.Defense,
		MaxHP:      req.MaxHP,
		MaxStamina: req.MaxStamina,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgEquipFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleUnequip clears an equipment slot
// @Summary Unequip slot
// @Tags equipment
// @Produce json
// @Param id path string true "Character ID"
// @Param slot path string true "Equipment slot"
// @Success 200 {object} domain.Character
// @Router /api/v1/characters/{id}/equipment/{slot} [delete]
func (h *CharacterHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	slot, err := domain.ParseEquipmentSlot(chi.URLParam(r, "slot"))
	if err != nil {
		respondServiceError(w, r, ErrMsgUnequipFailed, err)
		return
	}

	c, err := h.service.Unequip(r.Context(), id, slot)
	if err != nil {
		respondServiceError(w, r, ErrMsgUnequipFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleCacheStats reports the name lookup cache counters
// @Summary Character name cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} character.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *CharacterHandler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.GetCacheStats()
	logger.FromContext(r.Context()).Debug("Cache stats requested", "hits", stats.Hits, "misses", stats.Misses)
	respondJSON(w, http.StatusOK, stats)
}
