package feed

import (
	"net/http"
	"strings"
	"time"

	"github.com/mt2web/mt2web/internal/logger"
)

// parseTypes reads the optional ?types=a,b filter
func parseTypes(r *http.Request) []string {
	param := r.URL.Query().Get("types")
	if param == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

func connectedMessage(client *Client, eventTypes []string) Message {
	return Message{
		ID:        client.ID,
		Type:      EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"client_id":    client.ID,
			"character_id": client.CharacterID,
			"filters":      eventTypes,
		},
	}
}

// ServeSSE streams characterID's events to w until the client goes away or
// the hub stops
func (h *Hub) ServeSSE(w http.ResponseWriter, r *http.Request, characterID string) {
	log := logger.FromContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventTypes := parseTypes(r)
	client := h.Register(characterID, TransportSSE, eventTypes)
	log.Info(LogMsgClientConnected,
		"client_id", client.ID,
		"character_id", characterID,
		"transport", TransportSSE,
		"filters", eventTypes)

	defer func() {
		h.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportSSE)
	}()

	if msg, err := FormatSSEMessage(connectedMessage(client, eventTypes)); err == nil {
		if _, err := w.Write(msg); err != nil {
			return
		}
		flusher.Flush()
	}

	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case m, ok := <-client.Messages:
			if !ok {
				return
			}
			out, err := FormatSSEMessage(m)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				continue
			}
			if _, err := w.Write(out); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return
			}
			flusher.Flush()

		case <-ticker.C:
			out, _ := FormatSSEMessage(Message{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
			if _, err := w.Write(out); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
