package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ComboLab/combolab-go/internal/infrastructure/messaging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SSEHandlers serves the live combo feed
type SSEHandlers struct {
	broadcaster *messaging.SSEBroadcaster
	logger      *logging.ChanneledLogger
}

// NewSSEHandlers creates SSE handlers with injected dependencies
func NewSSEHandlers(broadcaster *messaging.SSEBroadcaster, logger *logging.ChanneledLogger) *SSEHandlers {
	return &SSEHandlers{
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// GetComboFeed establishes a Server-Sent Events connection for a game's combo
// feed.
func (h *SSEHandlers) GetComboFeed(c *gin.Context) {
	gameID := c.Param("id")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game ID required for feed connection"})
		return
	}

	h.logger.SSE().Debug("Received SSE connection request", "gameId", gameID, "path", c.Request.URL.Path)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch := h.broadcaster.AddClient(gameID)
	defer h.broadcaster.RemoveClient(ch, gameID)

	// Initial connection confirmation
	fmt.Fprintf(c.Writer, "data: {\"type\":\"connected\",\"gameId\":\"%s\",\"timestamp\":\"%s\"}\n\n",
		gameID, time.Now().UTC().Format(time.RFC3339))
	c.Writer.Flush()

	ticker := time.NewTicker(config.SSEHeartbeatInterval)
	defer ticker.Stop()

	clientCtx := c.Request.Context()
	connectionStart := time.Now()

	for {
		select {
		case <-clientCtx.Done():
			h.logger.SSE().Info("SSE client disconnected", "gameId", gameID, "connectionDuration", time.Since(connectionStart))
			return
		case message := <-ch:
			fmt.Fprint(c.Writer, message)
			c.Writer.Flush()
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()
		}
	}
}
