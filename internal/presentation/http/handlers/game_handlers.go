package handlers

import (
	"net/http"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// GameHandlers contains all game-related HTTP handlers
type GameHandlers struct {
	gameService *services.GameService
	logger      *logging.ChanneledLogger
}

// NewGameHandlers creates game handlers with injected dependencies
func NewGameHandlers(gameService *services.GameService, logger *logging.ChanneledLogger) *GameHandlers {
	return &GameHandlers{
		gameService: gameService,
		logger:      logger,
	}
}

// GetGames returns all games using cache-first pattern
func (h *GameHandlers) GetGames(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get games request", "method", c.Request.Method, "path", c.Request.URL.Path)

	games, err := h.gameService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get games request completed", "count", len(games), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"games": games,
		"count": len(games),
	})
}

// GetGameByID returns a specific game by ID or slug
func (h *GameHandlers) GetGameByID(c *gin.Context) {
	start := time.Now()
	id := c.Param("id")
	h.logger.Content().Debug("Received get game request", "gameId", id)

	game, err := h.gameService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if game == nil {
		// Slugs are the public handle; try that before giving up.
		game, err = h.gameService.GetBySlug(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	h.logger.Content().Info("Get game request completed", "gameId", game.ID, "duration", time.Since(start))
	c.JSON(http.StatusOK, game)
}

// PostGame creates a new game
func (h *GameHandlers) PostGame(c *gin.Context) {
	var game content.GameNode
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.gameService.Create(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// PutGame updates an existing game
func (h *GameHandlers) PutGame(c *gin.Context) {
	var game content.GameNode
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	game.ID = c.Param("id")

	if err := h.gameService.Update(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a game
func (h *GameHandlers) DeleteGame(c *gin.Context) {
	if err := h.gameService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
