// Package ws exposes the server-push subscription endpoint. Terminals
// connect here once and receive every order event until the socket drops;
// the channel carries nothing inbound.
package ws

import (
	"log/slog"
	"net/http"

	"tracking/internal/broadcast"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades subscription requests and parks them in the hub.
type Handler struct {
	hub      *broadcast.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates the subscription endpoint handler. Origins are not
// checked: terminals connect from anywhere on the depot network, matching
// the wide-open CORS policy of the REST surface.
func NewHandler(hub *broadcast.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// Subscribe handles GET /ws. The connection is registered for broadcasts
// immediately after the upgrade; the read loop only drains inbound frames
// to detect closure, discarding any payload. Events published before the
// registration or after the drop are never replayed.
func (h *Handler) Subscribe(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	id := h.hub.Register(conn)
	defer func() {
		h.hub.Unregister(id)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.logger.Debug("Subscriber connection closed", "id", id, "error", err)
			return nil
		}
	}
}
