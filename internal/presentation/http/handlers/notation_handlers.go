package handlers

import (
	"net/http"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/media"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// IconUploadRequest is the request body for notation element icon uploads
type IconUploadRequest struct {
	Data string `json:"data" binding:"required"`
}

// NotationHandlers contains all notation-related HTTP handlers
type NotationHandlers struct {
	notationService *services.NotationService
	imageProcessor  *media.ImageProcessor
	logger          *logging.ChanneledLogger
}

// NewNotationHandlers creates notation handlers with injected dependencies
func NewNotationHandlers(notationService *services.NotationService, imageProcessor *media.ImageProcessor, logger *logging.ChanneledLogger) *NotationHandlers {
	return &NotationHandlers{
		notationService: notationService,
		imageProcessor:  imageProcessor,
		logger:          logger,
	}
}

// GetGameNotation returns the notation reference for a game
func (h *NotationHandlers) GetGameNotation(c *gin.Context) {
	start := time.Now()
	gameID := c.Param("id")
	h.logger.Notation().Debug("Received get notation request", "gameId", gameID)

	ref, err := h.notationService.GetReferenceData(gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Notation().Info("Get notation request completed", "gameId", gameID, "categories", len(ref), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"gameId":     gameID,
		"categories": ref,
	})
}

// PutGameNotation replaces the notation reference for a game
func (h *NotationHandlers) PutGameNotation(c *gin.Context) {
	gameID := c.Param("id")

	var ref notation.NotationReference
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.notationService.UpdateGameNotation(gameID, ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated", "categories": len(ref)})
}

// GetNotationElement resolves a single element from a game's reference data
func (h *NotationHandlers) GetNotationElement(c *gin.Context) {
	gameID := c.Param("id")
	categoryID := c.Param("categoryId")
	elementID := c.Param("elementId")

	element := h.notationService.GetNotationElement(gameID, categoryID, elementID)
	if element == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notation element not found"})
		return
	}

	c.JSON(http.StatusOK, element)
}

// PostElementIcon stores an icon for a notation element
func (h *NotationHandlers) PostElementIcon(c *gin.Context) {
	gameID := c.Param("id")
	elementID := c.Param("elementId")

	var req IconUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	url, err := h.imageProcessor.ProcessElementIcon(req.Data, gameID, elementID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Element icon stored", "gameId", gameID, "elementId", elementID)
	c.JSON(http.StatusCreated, gin.H{"imageUrl": url})
}

// DeleteNotationCache drops cached reference data for one game, or for all
// games when no id is given. The endpoint is closed unless ADMIN_PASSWORD is
// configured and presented.
func (h *NotationHandlers) DeleteNotationCache(c *gin.Context) {
	if config.AdminPassword == "" || c.GetHeader("X-Admin-Password") != config.AdminPassword {
		h.logger.Auth().Warn("Rejected cache clear request", "remoteAddr", c.ClientIP())
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	gameID := c.Query("gameId")
	h.notationService.ClearCache(gameID)

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
