package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/work"
)

type WorkHandler struct {
	service work.Service
}

func NewWorkHandler(service work.Service) *WorkHandler {
	return &WorkHandler{service: service}
}

// CreateWorkRequest queues a work. Attacks name a mob, duels name an
// opponent by id or by name.
type CreateWorkRequest struct {
	Kind         string     `json:"kind" validate:"required,work_kind"`
	Type         string     `json:"type" validate:"required,work_type"`
	MobID        string     `json:"mob_id,omitempty" validate:"required_if=Kind attack,max=64"`
	OpponentID   *uuid.UUID `json:"opponent_id,omitempty"`
	OpponentName string     `json:"opponent_name,omitempty" validate:"max=32"`
}

// WorkListResponse is the queue with its countdowns
type WorkListResponse struct {
	Works []domain.Work `json:"works"`
	Count int           `json:"count"`
}

// HandleList advances the queue and returns it
// @Summary List works
// @Description Resolves every work whose time has come, then returns the queue with countdowns in seconds
// @Tags works
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} WorkListResponse
// @Router /api/v1/characters/{id}/works [get]
func (h *WorkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	works, err := h.service.ListWorks(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListWorksFailed, err)
		return
	}
	if works == nil {
		works = []domain.Work{}
	}

	respondJSON(w, http.StatusOK, WorkListResponse{Works: works, Count: len(works)})
}

// HandleCreate queues a new work behind the existing ones
// @Summary Create work
// @Tags works
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body CreateWorkRequest true "Work"
// @Success 201 {object} domain.Work
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters/{id}/works [post]
func (h *WorkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	var req CreateWorkRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create work"); err != nil {
		return
	}
	if req.Kind == string(domain.WorkKindDuel) && req.OpponentID == nil && req.OpponentName == "" {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{"opponent_name": "This field is required"},
		})
		return
	}

	created, err := h.service.CreateWork(r.Context(), characterID, work.CreateRequest{
		Kind:         domain.WorkKind(req.Kind),
		Type:         domain.WorkType(req.Type),
		MobID:        req.MobID,
		OpponentID:   req.OpponentID,
		OpponentName: req.OpponentName,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateWorkFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleCancel drops a queued work and refunds its stamina
// @Summary Cancel work
// @Tags works
// @Produce json
// @Param id path string true "Character ID"
// @Param workID path string true "Work ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/works/{workID} [delete]
func (h *WorkHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	workID, ok := GetUUIDPathParam(r, w, "workID")
	if !ok {
		return
	}

	if err := h.service.CancelWork(r.Context(), characterID, workID); err != nil {
		respondServiceError(w, r, ErrMsgCancelWorkFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWorkCancelled})
}

// HandleAdminGet reads a work as stored, without advancing the queue
// @Summary Get stored work
// @Tags admin
// @Produce json
// @Param workID path string true "Work ID"
// @Success 200 {object} domain.Work
// @Router /api/v1/admin/works/{workID} [get]
func (h *WorkHandler) HandleAdminGet(w http.ResponseWriter, r *http.Request) {
	workID, ok := GetUUIDPathParam(r, w, "workID")
	if !ok {
		return
	}

	wk, err := h.service.GetWork(r.Context(), workID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetWorkFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, wk)
}

// HandleAdminPatch overwrites fields of a stored work
// @Summary Patch stored work
// @Tags admin
// @Accept json
// @Produce json
// @Param workID path string true "Work ID"
// @Param request body domain.WorkPatch true "Fields to overwrite"
// @Success 200 {object} domain.Work
// @Router /api/v1/admin/works/{workID} [patch]
func (h *WorkHandler) HandleAdminPatch(w http.ResponseWriter, r *http.Request) {
	workID, ok := GetUUIDPathParam(r, w, "workID")
	if !ok {
		return
	}

	var patch domain.WorkPatch
	if err := DecodeAndValidateRequest(r, w, &patch, "Patch work"); err != nil {
		return
	}

	updated, err := h.service.UpdateWork(r.Context(), workID, patch)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateWorkFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Work patched by admin", "work_id", workID)
	respondJSON(w, http.StatusOK, updated)
}
