// Package messaging provides the concrete implementation of the SSE broadcaster.
package messaging

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// SSEBroadcaster manages per-game SSE connections for the live combo feed.
type SSEBroadcaster struct {
	gameClients map[string][]chan string // gameId -> channels
	mu          sync.Mutex
	logger      *logging.ChanneledLogger
}

var (
	globalBroadcaster *SSEBroadcaster
	once              sync.Once
)

// NewSSEBroadcaster creates the singleton SSEBroadcaster instance.
func NewSSEBroadcaster(logger *logging.ChanneledLogger) *SSEBroadcaster {
	once.Do(func() {
		globalBroadcaster = &SSEBroadcaster{
			gameClients: make(map[string][]chan string),
			logger:      logger,
		}
	})
	return globalBroadcaster
}

// AddClient registers a new SSE client scoped to a game.
func (b *SSEBroadcaster) AddClient(gameID string) chan string {
	ch := make(chan string, config.SSEClientBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.gameClients[gameID] = append(b.gameClients[gameID], ch)

	b.logger.SSE().Debug("SSE client registered", "gameId", gameID)
	return ch
}

// RemoveClient removes an SSE client from its game feed.
func (b *SSEBroadcaster) RemoveClient(ch chan string, gameID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if clients, exists := b.gameClients[gameID]; exists {
		newClients := make([]chan string, 0, len(clients))
		for _, client := range clients {
			if client != ch {
				newClients = append(newClients, client)
			}
		}
		if len(newClients) == 0 {
			delete(b.gameClients, gameID)
		} else {
			b.gameClients[gameID] = newClients
		}
	}
	b.logger.SSE().Debug("SSE client unregistered", "gameId", gameID)
}

// GetConnectionCount returns the connection count for a game feed.
func (b *SSEBroadcaster) GetConnectionCount(gameID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.gameClients[gameID])
}

// BroadcastComboEvent notifies every client on a game feed about a combo
// change. Sends are non-blocking; slow clients drop messages.
func (b *SSEBroadcaster) BroadcastComboEvent(gameID, event, comboID string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.SSE().Error("Panic recovered in BroadcastComboEvent", "error", r, "gameId", gameID)
		}
	}()

	payload, _ := json.Marshal(map[string]string{"comboId": comboID, "gameId": gameID})
	message := fmt.Sprintf("event: %s\ndata: %s\n\n", event, payload)

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.gameClients[gameID] {
		select {
		case ch <- message:
		default:
			b.logger.SSE().Warn("SSE channel full, message dropped", "gameId", gameID)
		}
	}
}
