package handler

import (
	"net/http"

	"github.com/mt2web/mt2web/internal/feed"
)

type FeedHandler struct {
	hub *feed.Hub
	ws  *feed.WebSocket
}

func NewFeedHandler(hub *feed.Hub, ws *feed.WebSocket) *FeedHandler {
	return &FeedHandler{hub: hub, ws: ws}
}

// HandleSSE streams the character's reports and level-ups as server-sent events
// @Summary Live feed (SSE)
// @Tags feed
// @Produce text/event-stream
// @Param id path string true "Character ID"
// @Param types query string false "Comma separated event types"
// @Router /api/v1/characters/{id}/feed [get]
func (h *FeedHandler) HandleSSE(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	h.hub.ServeSSE(w, r, characterID.String())
}

// HandleWebSocket upgrades to a websocket carrying the same events as the SSE feed
// @Summary Live feed (websocket)
// @Tags feed
// @Param id path string true "Character ID"
// @Param types query string false "Comma separated event types"
// @Router /api/v1/characters/{id}/feed/ws [get]
func (h *FeedHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetUUIDPathParam(r, w, "id")
	if !ok {
		return
	}
	h.ws.Serve(w, r, characterID.String())
}

// HandleStats reports connected feed clients
// @Summary Feed stats
// @Tags admin
// @Produce json
// @Success 200 {object} feed.Stats
// @Router /api/v1/admin/feed/stats [get]
func (h *FeedHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.hub.Stats())
}
