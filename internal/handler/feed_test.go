package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mt2web/mt2web/internal/feed"
)

func TestFeedHandler(t *testing.T) {
	hub := feed.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	h := NewFeedHandler(hub, feed.NewWebSocket(hub, nil))

	t.Run("Stats", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleStats(w, newRequest(t, http.MethodGet, "/", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, decodeBody[feed.Stats](t, w).Clients)
	})

	t.Run("SSE Rejects Malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleSSE(w, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("WebSocket Rejects Malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleWebSocket(w, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
