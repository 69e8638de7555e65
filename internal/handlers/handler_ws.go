package handlers

import (
	"io"
	"log/slog"

	"github.com/gathr-app/gathr_backend/internal/middleware"
	"github.com/gathr-app/gathr_backend/internal/notifier"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/websocket"
)

// streamHandler upgrades clients to a websocket and relays the event's
// notification stream to them.
type streamHandler struct {
	hub *notifier.Hub
}

// newStreamHandler creates a new streamHandler.
func newStreamHandler(hub *notifier.Hub) *streamHandler {
	return &streamHandler{hub: hub}
}

// registerStreamRoutes registers the websocket notification stream route.
func registerStreamRoutes(rg *gin.RouterGroup, hub *notifier.Hub) {
	h := newStreamHandler(hub)
	rg.GET("/events/:eventID/stream", h.subscribe)
}

// subscribe godoc
// @Summary Subscribe to event notifications
// @Description Upgrades the connection to a websocket and pushes post and comment notifications for the event as JSON messages
// @Tags discussion
// @Param   eventID path string true "Event ID"
// @Success 101 "Switching protocols"
// @Router /events/{eventID}/stream [get]
func (h *streamHandler) subscribe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	server := websocket.Server{Handler: func(conn *websocket.Conn) {
		defer conn.Close()

		sub := h.hub.Subscribe(eventID)
		defer sub.Close()
		logger.Info("Websocket subscriber connected", slog.String("event_id", eventID))

		// Drain the client side so we notice the peer going away.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			io.Copy(io.Discard, conn)
		}()

		for {
			select {
			case msg, ok := <-sub.Messages():
				if !ok {
					return
				}
				if err := websocket.Message.Send(conn, string(msg)); err != nil {
					logger.Info("Websocket subscriber disconnected", slog.String("event_id", eventID))
					return
				}
			case <-closed:
				return
			}
		}
	}}

	server.ServeHTTP(c.Writer, c.Request)
}
