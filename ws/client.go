package ws

import (
	"github.com/gorilla/websocket"

	"terek_backend/internal/logger"
)

type Client struct {
	Conn    *websocket.Conn
	Send    chan FeedEvent
	Manager *FeedManager
}

// readPump drains inbound frames so that close/ping control messages are
// processed; the feed has no inbound protocol.
func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Debug("feed write error", "error", err.Error())
			break
		}
	}
}
