package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"terek_backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type FeedHandler struct {
	Manager *FeedManager
}

func NewFeedHandler(manager *FeedManager) *FeedHandler {
	return &FeedHandler{Manager: manager}
}

// ServeFeed upgrades the connection and subscribes it to the live
// completed-donation feed. The feed is public.
func (h *FeedHandler) ServeFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := &Client{
		Conn:    conn,
		Send:    make(chan FeedEvent, 16),
		Manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}
