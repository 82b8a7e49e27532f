package handlers

import (
	"net/http"

	"studio-console/internal/logger"
	"studio-console/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades operator UIs onto the view update stream
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler creates a handler accepting connections from allowedOrigins ("*" allows any)
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Stream handles GET /ws
// @Summary View update stream
// @Description WebSocket carrying one JSON view update per message
// @Tags realtime
// @Success 101 "Switching protocols"
// @Router /ws [get]
func (h *WSHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithContext(c.Request.Context()).Warnf("WebSocket upgrade failed: %v", err)
		return
	}
	h.hub.Serve(ws.NewClient(conn))
}
