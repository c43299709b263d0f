// Package live pushes draft and scoring events to websocket clients. Each
// tournament maps to one room; clients join a room and receive every event
// broadcast for that tournament.
package live

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Event is the wire format for everything the hub sends.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Room    string      `json:"room,omitempty"`
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes client registration until the process exits. Call it once,
// in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.mu.Unlock()
			h.logger.Debug("client joined room",
				slog.String("client_id", client.id), slog.String("room", client.room))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if _, registered := clients[client]; registered {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Debug("client left room",
				slog.String("client_id", client.id), slog.String("room", client.room))
		}
	}
}

func tournamentRoom(tournamentID int) string {
	return fmt.Sprintf("tournament_%d", tournamentID)
}

// BroadcastTournamentEvent sends an event to every client in the tournament's
// room. Clients whose send buffer is full are skipped rather than blocked on.
func (h *Hub) BroadcastTournamentEvent(tournamentID int, eventType string, payload interface{}) {
	room := tournamentRoom(tournamentID)
	message, err := json.Marshal(Event{Type: eventType, Payload: payload, Room: room})
	if err != nil {
		h.logger.Error("failed to marshal event",
			slog.String("type", eventType), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		client.enqueue(message)
	}
}
