/*
Package chat carries visitor conversations with the scripted assistant over
WebSocket connections.

This file defines the Manager, which tracks every live connection so the
server can close them all during graceful shutdown.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"serenity/internal/app/chatbot"
	"serenity/internal/pkg/logx"
)

// Manager tracks all active assistant connections.
type Manager struct {
	// engine is the shared, immutable dialogue script.
	engine *chatbot.Engine

	// clients holds the live connections, keyed by client ID.
	clients map[string]*Client

	// mu protects concurrent access to the clients map.
	mu sync.RWMutex

	// structured logger with Manager context.
	logger zerolog.Logger
}

// NewManager constructs a Manager around the given dialogue engine.
func NewManager(engine *chatbot.Engine) *Manager {
	return &Manager{
		engine:  engine,
		clients: make(map[string]*Client),
		logger:  logx.Logger().With().Str("component", "ChatManager").Logger(),
	}
}

// Engine exposes the shared dialogue engine.
func (m *Manager) Engine() *chatbot.Engine {
	return m.engine
}

// Register adds a client to the tracked set.
func (m *Manager) Register(c *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[c.id] = c
	m.logger.Info().Str("client_id", c.id).Int("total_clients", len(m.clients)).Msg("Assistant conversation opened.")
}

// remove drops a client from the tracked set. Safe to call repeatedly.
func (m *Manager) remove(c *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.clients[c.id]; ok && current == c {
		delete(m.clients, c.id)
		m.logger.Info().Str("client_id", c.id).Int("total_clients", len(m.clients)).Msg("Assistant conversation closed.")
	}
}

// ActiveConversations reports how many widget connections are live.
func (m *Manager) ActiveConversations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Shutdown closes every live connection. Each client's ReadPump then runs its
// normal cleanup path.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down chat manager...")

	m.mu.Lock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.clients = make(map[string]*Client)
	m.mu.Unlock()

	for _, c := range clients {
		if err := c.conn.Close(); err != nil {
			m.logger.Warn().Err(err).Str("client_id", c.id).Msg("Error closing client connection during shutdown")
		}
	}

	m.logger.Info().Msg("Chat manager shutdown complete.")
}
