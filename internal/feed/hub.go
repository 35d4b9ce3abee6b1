// Package feed pushes note change events to connected clients over
// WebSocket so every open session of a user sees list changes without
// polling. Events are fanned out per user: sessions of one user never
// receive another user's events.
package feed

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// userEvent pairs a serialized note event with the user it belongs to.
type userEvent struct {
	userID  int64
	payload []byte
}

// Hub tracks all live WebSocket sessions grouped by user id and fans note
// events out to them. Register, unregister and broadcast all flow through
// channels serviced by a single [Hub.Run] goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan userEvent

	mu      sync.Mutex
	clients map[int64]map[*Client]bool

	logger *logger.Logger
}

// NewHub constructs a [Hub]. Call [Hub.Run] in its own goroutine before
// serving connections.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan userEvent, 64),
		clients:    make(map[int64]map[*Client]bool),
		logger:     log,
	}
}

// Run services the hub channels until ctx is cancelled. On shutdown every
// remaining session is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()
			h.logger.Debug().Int64("user_id", client.userID).Msg("feed client registered")

		case client := <-h.unregister:
			h.removeClient(client)

		case event := <-h.broadcast:
			// Collect recipients under the lock, write outside it.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.clients[event.userID]))
			for client := range h.clients[event.userID] {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.send <- event.payload:
				default:
					// Send buffer full means the client is lagging.
					// Drop it rather than block the hub.
					h.logger.Warn().Int64("user_id", client.userID).Msg("feed client send buffer full, dropping")
					h.removeClient(client)
				}
			}

		case <-ctx.Done():
			h.mu.Lock()
			for _, sessions := range h.clients {
				for client := range sessions {
					close(client.send)
					client.conn.Close()
				}
			}
			h.clients = make(map[int64]map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Publish serializes the event and queues it for every live session of the
// given user. Serialization failures are logged and swallowed so note
// mutations never fail because of the feed.
func (h *Hub) Publish(userID int64, event models.NoteEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Err(err).Str("func", "*Hub.Publish").Msg("error marshalling note event")
		return
	}

	h.broadcast <- userEvent{userID: userID, payload: payload}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID][client]; ok {
		delete(h.clients[client.userID], client)
		close(client.send)
		if len(h.clients[client.userID]) == 0 {
			delete(h.clients, client.userID)
		}
	}
}
