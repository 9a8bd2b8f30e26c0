package handlers

import (
	"net/http"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/entities/content"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// ComboHandlers contains all combo-related HTTP handlers
type ComboHandlers struct {
	comboService *services.ComboService
	logger       *logging.ChanneledLogger
}

// NewComboHandlers creates combo handlers with injected dependencies
func NewComboHandlers(comboService *services.ComboService, logger *logging.ChanneledLogger) *ComboHandlers {
	return &ComboHandlers{
		comboService: comboService,
		logger:       logger,
	}
}

// GetCombosByCharacter returns all combos for a character
func (h *ComboHandlers) GetCombosByCharacter(c *gin.Context) {
	start := time.Now()
	characterID := c.Param("id")
	sortBy := c.Query("sort")
	h.logger.Content().Debug("Received get combos request", "characterId", characterID, "sort", sortBy)

	combos, err := h.comboService.GetByCharacter(characterID, sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get combos request completed", "characterId", characterID, "count", len(combos), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"combos": combos,
		"count":  len(combos),
	})
}

// GetComboByID returns a specific combo
func (h *ComboHandlers) GetComboByID(c *gin.Context) {
	combo, err := h.comboService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if combo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "combo not found"})
		return
	}

	c.JSON(http.StatusOK, combo)
}

// GetExpandedCombo returns a combo with its notation resolved for display
func (h *ComboHandlers) GetExpandedCombo(c *gin.Context) {
	start := time.Now()
	comboID := c.Param("id")
	h.logger.Notation().Debug("Received expand combo request", "comboId", comboID)

	expanded, err := h.comboService.GetExpanded(comboID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if expanded == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "combo not found"})
		return
	}

	h.logger.Notation().Info("Expand combo request completed", "comboId", comboID, "items", len(expanded.ExpandedNotation), "duration", time.Since(start))
	c.JSON(http.StatusOK, expanded)
}

// PostCombo creates a new combo under a character
func (h *ComboHandlers) PostCombo(c *gin.Context) {
	var combo content.ComboNode
	if err := c.ShouldBindJSON(&combo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	combo.CharacterID = c.Param("id")

	if err := h.comboService.Create(&combo, c.GetString(userIDKey)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, combo)
}

// PutCombo updates an existing combo
func (h *ComboHandlers) PutCombo(c *gin.Context) {
	var combo content.ComboNode
	if err := c.ShouldBindJSON(&combo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	combo.ID = c.Param("id")

	if err := h.comboService.Update(&combo, c.GetString(userIDKey)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, combo)
}

// DeleteCombo removes a combo
func (h *ComboHandlers) DeleteCombo(c *gin.Context) {
	if err := h.comboService.Delete(c.Param("id"), c.GetString(userIDKey)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PutLike toggles the authenticated user's like on a combo
func (h *ComboHandlers) PutLike(c *gin.Context) {
	combo, err := h.comboService.ToggleLike(c.Param("id"), c.GetString(userIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, combo)
}

// PutDislike toggles the authenticated user's dislike on a combo
func (h *ComboHandlers) PutDislike(c *gin.Context) {
	combo, err := h.comboService.ToggleDislike(c.Param("id"), c.GetString(userIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, combo)
}
