package feed

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// PongTimeout is how long a websocket client may stay silent
	PongTimeout = 2 * KeepaliveInterval

	// MaxInboundMessageSize caps what a websocket client may send us
	MaxInboundMessageSize = 512
)

// Transports
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// Feed event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "Feed client connected"
	LogMsgClientDisconnected = "Feed client disconnected"
	LogMsgEventBroadcast     = "Forwarding event to feed"
	LogMsgEventDropped       = "Feed buffer full, event dropped"
	LogMsgWriteError         = "Failed to write feed event"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgBridgeRegistered   = "Feed bridge registered for event types"
	LogMsgMissingCharacter   = "Event has no character id, not forwarded"
)
