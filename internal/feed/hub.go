package feed

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/metrics"
)

// Message is what a feed client receives
type Message struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected feed consumer watching a single character
type Client struct {
	ID          string
	CharacterID string
	Transport   string
	Messages    chan Message
	EventFilter map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

type envelope struct {
	characterID string
	msg         Message
}

// Stats is a snapshot of connected clients
type Stats struct {
	Clients     int            `json:"clients"`
	Characters  int            `json:"characters"`
	ByTransport map[string]int `json:"by_transport"`
	Dropped     int64          `json:"dropped"`
}

// Hub routes character events to that character's connected clients
type Hub struct {
	clients    map[string]*Client
	broadcast  chan envelope
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	dropped    int64
}

// NewHub creates a new feed hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan envelope, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.Messages)
			metrics.FeedClients.WithLabelValues(client.Transport).Dec()
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			metrics.FeedClients.WithLabelValues(client.Transport).Inc()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.Messages)
				delete(h.clients, clientID)
				metrics.FeedClients.WithLabelValues(client.Transport).Dec()
			}
			h.mu.Unlock()

		case env := <-h.broadcast:
			h.mu.Lock()
			for _, client := range h.clients {
				if client.CharacterID != env.characterID || !client.wants(env.msg.Type) {
					continue
				}
				select {
				case client.Messages <- env.msg:
				default:
					h.dropped++
					slog.Warn(LogMsgEventDropped, "client_id", client.ID, "type", env.msg.Type)
				}
			}
			h.mu.Unlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for characterID. An empty eventTypes list means all events.
func (h *Hub) Register(characterID, transport string, eventTypes []string) *Client {
	client := &Client{
		ID:          uuid.New().String(),
		CharacterID: characterID,
		Transport:   transport,
		Messages:    make(chan Message, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool)
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.Messages)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Send queues a message for every client watching characterID. It never blocks.
func (h *Hub) Send(characterID, eventType string, payload interface{}) {
	env := envelope{
		characterID: characterID,
		msg: Message{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now().Unix(),
			Payload:   payload,
		},
	}

	select {
	case h.broadcast <- env:
	default:
		h.mu.Lock()
		h.dropped++
		h.mu.Unlock()
		slog.Warn(LogMsgEventDropped, "character_id", characterID, "type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Stats summarizes the connected clients
func (h *Hub) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := Stats{ByTransport: map[string]int{}, Dropped: h.dropped}
	characters := map[string]struct{}{}
	for _, c := range h.clients {
		s.Clients++
		s.ByTransport[c.Transport]++
		characters[c.CharacterID] = struct{}{}
	}
	s.Characters = len(characters)
	return s
}

// FormatSSEMessage formats a message for an event stream
func FormatSSEMessage(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	out := "id: " + msg.ID + "\n"
	out += "event: " + msg.Type + "\n"
	out += "data: " + string(data) + "\n\n"

	return []byte(out), nil
}
