// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a connection with a write mutex: gorilla/websocket allows at
// most one concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub tracks the dashboard clients subscribed to the live survey feed.
type Hub struct {
	// clients maps user id to connection; one connection per user.
	clients map[string]*client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = &client{conn: conn}
	slog.Info("websocket client registered", "user", userID)
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		slog.Info("websocket client unregistered", "user", userID)
	}
}

// Broadcast pushes an event to every connected client. The registry lock is
// released before any network I/O, so a slow client cannot stall
// Register/Unregister, and each connection sees one writer at a time. A
// dead connection is logged and skipped; it gets cleaned up when its read
// loop exits.
func (h *Hub) Broadcast(event string, payload interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		slog.Error("failed to encode websocket event", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	targets := make(map[string]*client, len(h.clients))
	for userID, c := range h.clients {
		targets[userID] = c
	}
	h.mu.RUnlock()

	for userID, c := range targets {
		if err := c.write(message); err != nil {
			slog.Warn("failed to push websocket event", "user", userID, "err", err)
		}
	}
}
