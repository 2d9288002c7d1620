package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/ws"
)

// WSHandler устанавливает WebSocket соединения чата с ассистентом.
type WSHandler struct {
	chat     ws.Chatter
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер.
func NewWSHandler(chat ws.Chatter, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &WSHandler{
		chat: chat,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Handle обслуживает GET /api/ws.
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту, второй раз писать нельзя.
		logger.Log.WithError(err).Warn("ws: не удалось установить соединение")
		return
	}

	session := ws.NewSession(conn, h.chat)
	session.Run(c.Request.Context())
}
