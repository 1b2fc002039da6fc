package handler

import (
	"net/http"
	"strconv"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/report"
)

type ReportHandler struct {
	service report.Service
}

func NewReportHandler(service report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

type CreateReportRequest struct {
	Type    string `json:"type" validate:"required,report_type"`
	Subject string `json:"subject" validate:"required,max=255"`
	Content string `json:"content" validate:"max=10000"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// HandleList returns the character's report history, newest first
// @Summary List reports
// @Tags reports
// @Produce json
// @Param id path string true "Character ID"
// @Param unread query bool false "Only unread reports"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Report
// @Router /api/v1/characters/{id}/reports [get]
func (h *ReportHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", report.DefaultListLimit)
	if !ok {
		return
	}
	offset, ok := GetOptionalIntQueryParam(r, w, "offset", 0)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(GetOptionalQueryParam(r, "unread", "false"))

	reports, err := h.service.List(r.Context(), characterID, report.ListOptions{
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgListReportsFailed, err)
		return
	}
	if reports == nil {
		reports = []domain.Report{}
	}

	respondJSON(w, http.StatusOK, reports)
}

// HandleCreate writes a report on the character's behalf
// @Summary Create report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} domain.Report
// @Router /api/v1/characters/{id}/reports [post]
func (h *ReportHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	var req CreateReportRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create report"); err != nil {
		return
	}

	created, err := h.service.Create(r.Context(), characterID, report.CreateRequest{
		Type:    domain.ReportType(req.Type),
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateReportFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleUnreadCount counts unread reports
// @Summary Unread report count
// @Tags reports
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} UnreadCountResponse
// @Router /api/v1/characters/{id}/reports/unread-count [get]
func (h *ReportHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	n, err := h.service.UnreadCount(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUnreadCountFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, UnreadCountResponse{Unread: n})
}

// HandleMarkAllRead marks every report of the character as read
// @Summary Mark all reports read
// @Tags reports
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} MarkAllReadResponse
// @Router /api/v1/characters/{id}/reports/read-all [post]
func (h *ReportHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}

	n, err := h.service.MarkAllRead(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, ErrMsgMarkReadFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, MarkAllReadResponse{Updated: n})
}

// HandleMarkRead marks one report as read
// @Summary Mark report read
// @Tags reports
// @Produce json
// @Param id path string true "Character ID"
// @Param reportID path string true "Report ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/reports/{reportID}/read [post]
func (h *ReportHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	reportID, ok := GetUUIDPathParam(r, w, "reportID")
	if !ok {
		return
	}

	if err := h.service.MarkRead(r.Context(), characterID, reportID); err != nil {
		respondServiceError(w, r, ErrMsgMarkReadFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReportRead})
}

// HandleDelete removes one report
// @Summary Delete report
// @Tags reports
// @Produce json
// @Param id path string true "Character ID"
// @Param reportID path string true "Report ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/reports/{reportID} [delete]
func (h *ReportHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	reportID, ok := GetUUIDPathParam(r, w, "reportID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), characterID, reportID); err != nil {
		respondServiceError(w, r, ErrMsgDeleteReportFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReportDeleted})
}
