package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fairwayleague/draft-system/live"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checks are left to the CORS configuration of the deployment.
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs handles GET /ws/tournaments/{tournamentID}, upgrading the connection
// and subscribing the client to the tournament's event room.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error to the client.
		slog.Warn("websocket upgrade failed",
			slog.Int("tournament_id", id), slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, id)
	client.Serve()
}
