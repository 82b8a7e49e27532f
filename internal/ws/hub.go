package ws

import (
	"context"
	"encoding/json"
	"sync"

	"studio-console/internal/logger"
	"studio-console/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const sendBuffer = 256

// Client is one operator UI subscribed to view updates
type Client struct {
	ID   uuid.UUID
	Send chan []byte
	Conn *websocket.Conn
}

// NewClient wraps an upgraded connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.New(),
		Send: make(chan []byte, sendBuffer),
		Conn: conn,
	}
}

// Hub fans view updates out to every connected operator UI
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a hub; Run must be started before clients register
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	log := logger.WithContext(ctx)
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.Clients {
				close(client.Send)
				delete(h.Clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			log.WithField("client", client.ID).Info("Operator UI connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.WithField("client", client.ID).Info("Operator UI disconnected")

		case msg := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.Clients {
				select {
				case client.Send <- msg:
				default:
					// slow reader; drop it rather than stall everyone
					close(client.Send)
					delete(h.Clients, client)
					log.WithField("client", client.ID).Warn("Operator UI dropped, send buffer full")
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a view update for every client
func (h *Hub) Publish(update models.ViewUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		logger.New().Errorf("Failed to encode view update: %v", err)
		return
	}
	select {
	case h.Broadcast <- data:
	default:
		logger.New().WithField("type", update.Type).Warn("View update dropped, hub is backed up")
	}
}

// ClientCount returns the number of connected operator UIs
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
