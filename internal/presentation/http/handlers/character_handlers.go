package handlers

import (
	"net/http"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// CharacterHandlers contains all character-related HTTP handlers
type CharacterHandlers struct {
	characterService *services.CharacterService
	logger           *logging.ChanneledLogger
}

// NewCharacterHandlers creates character handlers with injected dependencies
func NewCharacterHandlers(characterService *services.CharacterService, logger *logging.ChanneledLogger) *CharacterHandlers {
	return &CharacterHandlers{
		characterService: characterService,
		logger:           logger,
	}
}

// GetCharactersByGame returns the roster for a game
func (h *CharacterHandlers) GetCharactersByGame(c *gin.Context) {
	start := time.Now()
	gameID := c.Param("id")
	h.logger.Content().Debug("Received get characters request", "gameId", gameID)

	characters, err := h.characterService.GetByGame(gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get characters request completed", "gameId", gameID, "count", len(characters), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"characters": characters,
		"count":      len(characters),
	})
}

// GetCharacterByID returns a specific character
func (h *CharacterHandlers) GetCharacterByID(c *gin.Context) {
	character, err := h.characterService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if character == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
		return
	}

	c.JSON(http.StatusOK, character)
}

// PostCharacter creates a new character under a game
func (h *CharacterHandlers) PostCharacter(c *gin.Context) {
	var character content.CharacterNode
	if err := c.ShouldBindJSON(&character); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	character.GameID = c.Param("id")

	if err := h.characterService.Create(&character); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, character)
}

// PutCharacter updates an existing character
func (h *CharacterHandlers) PutCharacter(c *gin.Context) {
	var character content.CharacterNode
	if err := c.ShouldBindJSON(&character); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	character.ID = c.Param("id")

	if err := h.characterService.Update(&character); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, character)
}

// DeleteCharacter removes a character
func (h *CharacterHandlers) DeleteCharacter(c *gin.Context) {
	if err := h.characterService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
