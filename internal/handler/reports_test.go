package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/report"
	"github.com/mt2web/mt2web/mocks"
)

func TestReportHandler_HandleList(t *testing.T) {
	characterID := uuid.New()
	params := map[string]string{"id": characterID.String()}

	tests := []struct {
		name           string
		target         string
		setupMock      func(*mocks.MockReportService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Defaults",
			target: "/",
			setupMock: func(m *mocks.MockReportService) {
				m.On("List", mock.Anything, characterID, report.ListOptions{Limit: report.DefaultListLimit}).
					Return([]domain.Report{{Subject: "Sleep report"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Sleep report",
		},
		{
			name:   "Unread Only",
			target: "/?unread=true&limit=5&offset=5",
			setupMock: func(m *mocks.MockReportService) {
				m.On("List", mock.Anything, characterID, report.ListOptions{UnreadOnly: true, Limit: 5, Offset: 5}).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name:           "Bad Offset",
			target:         "/?offset=abc",
			setupMock:      func(m *mocks.MockReportService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockReportService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewReportHandler(svc).HandleList(w, newRequest(t, http.MethodGet, tt.target, nil, params))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestReportHandler_HandleCreate(t *testing.T) {
	characterID := uuid.New()
	params := map[string]string{"id": characterID.String()}

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("Create", mock.Anything, characterID, report.CreateRequest{
			Type:    domain.ReportTypeInfo,
			Subject: "Note",
			Content: "remember the dragon",
		}).Return(&domain.Report{Subject: "Note"}, nil)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleCreate(w, newRequest(t, http.MethodPost, "/",
			CreateReportRequest{Type: "info", Subject: "Note", Content: "remember the dragon"}, params))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleCreate(w, newRequest(t, http.MethodPost, "/",
			CreateReportRequest{Type: "gossip", Subject: "Note"}, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid report type")
	})

	t.Run("Missing Subject", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleCreate(w, newRequest(t, http.MethodPost, "/",
			CreateReportRequest{Type: "info"}, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required")
	})
}

func TestReportHandler_ReadState(t *testing.T) {
	characterID := uuid.New()
	reportID := uuid.New()

	t.Run("Unread Count", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("UnreadCount", mock.Anything, characterID).Return(4, nil)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleUnreadCount(w, newRequest(t, http.MethodGet, "/", nil,
			map[string]string{"id": characterID.String()}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4, decodeBody[UnreadCountResponse](t, w).Unread)
	})

	t.Run("Mark All Read", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("MarkAllRead", mock.Anything, characterID).Return(int64(7), nil)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleMarkAllRead(w, newRequest(t, http.MethodPost, "/", nil,
			map[string]string{"id": characterID.String()}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), decodeBody[MarkAllReadResponse](t, w).Updated)
	})

	t.Run("Mark Read Foreign Report", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("MarkRead", mock.Anything, characterID, reportID).Return(domain.ErrReportNotFound)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleMarkRead(w, newRequest(t, http.MethodPost, "/", nil,
			map[string]string{"id": characterID.String(), "reportID": reportID.String()}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgReportNotFoundError)
	})

	t.Run("Delete", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("Delete", mock.Anything, characterID, reportID).Return(nil)

		w := httptest.NewRecorder()
		NewReportHandler(svc).HandleDelete(w, newRequest(t, http.MethodDelete, "/", nil,
			map[string]string{"id": characterID.String(), "reportID": reportID.String()}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgReportDeleted)
	})
}
