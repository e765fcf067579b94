package ws

import (
	"sync"

	"terek_backend/internal/logger"
)

// FeedEvent is broadcast to every connected feed client when a donation
// reaches completed.
type FeedEvent struct {
	Type         string `json:"type"`
	DonationID   string `json:"donation_id"`
	LocationName string `json:"location_name,omitempty"`
	TreeCount    int    `json:"tree_count"`
}

// FeedManager is the hub for the live donation feed. Clients are anonymous
// listeners; there is no inbound message protocol.
type FeedManager struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan FeedEvent
	mu         sync.RWMutex
}

func NewFeedManager() *FeedManager {
	return &FeedManager{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan FeedEvent, 64),
	}
}

func (m *FeedManager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("feed client connected", "total", m.count())

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				close(client.Send)
				delete(m.clients, client)
			}
			m.mu.Unlock()
			logger.Debug("feed client disconnected", "total", m.count())

		case event := <-m.broadcast:
			m.broadcastEvent(event)
		}
	}
}

// Broadcast queues an event for all connected clients. Never blocks the
// caller; the feed is best-effort.
func (m *FeedManager) Broadcast(event FeedEvent) {
	select {
	case m.broadcast <- event:
	default:
		logger.Warn("feed broadcast queue full, dropping event", "donation_id", event.DonationID)
	}
}

func (m *FeedManager) broadcastEvent(event FeedEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients {
		select {
		case client.Send <- event:
		default:
			// Slow client; drop it rather than stall the feed.
			go func(c *Client) { m.unregister <- c }(client)
		}
	}
}

func (m *FeedManager) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
