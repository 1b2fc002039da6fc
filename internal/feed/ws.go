package feed

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mt2web/mt2web/internal/logger"
)

// WebSocket serves the feed over websocket connections. Clients only listen;
// anything they send besides control frames is discarded.
type WebSocket struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewWebSocket creates a websocket endpoint for hub. allowedOrigins empty
// means any origin is accepted.
func NewWebSocket(hub *Hub, allowedOrigins []string) *WebSocket {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocket{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				return allowed[r.Header.Get("Origin")]
			},
		},
	}
}

// Serve upgrades the request and pushes characterID's events until either side hangs up
func (s *WebSocket) Serve(w http.ResponseWriter, r *http.Request, characterID string) {
	log := logger.FromContext(r.Context())

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	eventTypes := parseTypes(r)
	client := s.hub.Register(characterID, TransportWebSocket, eventTypes)
	log.Info(LogMsgClientConnected,
		"client_id", client.ID,
		"character_id", characterID,
		"transport", TransportWebSocket,
		"filters", eventTypes)
	defer func() {
		s.hub.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportWebSocket)
	}()

	// Reader: keeps pong deadlines fresh and notices the client leaving
	gone := make(chan struct{})
	conn.SetReadLimit(MaxInboundMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongTimeout))
	})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeJSON(conn, connectedMessage(client, eventTypes)); err != nil {
		return
	}

	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			return

		case <-r.Context().Done():
			return

		case m, ok := <-client.Messages:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(time.Second))
				return
			}
			if err := writeJSON(conn, m); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
				return
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, v interface{}) error {
	_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	return conn.WriteJSON(v)
}
