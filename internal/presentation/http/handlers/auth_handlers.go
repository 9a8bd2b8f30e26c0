// Package handlers provides HTTP handlers for the API endpoints
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains all auth-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// PostRegister creates a new account
func (h *AuthHandlers) PostRegister(c *gin.Context) {
	start := time.Now()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Auth().Info("Register request completed", "userId", result.Profile.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, result)
}

// PostLogin authenticates an account
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	start := time.Now()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.logger.Auth().Info("Login request completed", "userId", result.Profile.ID, "duration", time.Since(start))
	c.JSON(http.StatusOK, result)
}

// GetProfile returns the authenticated user's profile and favorites
func (h *AuthHandlers) GetProfile(c *gin.Context) {
	userID := c.GetString(userIDKey)

	u, err := h.authService.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// PutFavoriteCharacter toggles a character in the user's favorites
func (h *AuthHandlers) PutFavoriteCharacter(c *gin.Context) {
	h.toggleFavorite(c, true)
}

// PutFavoriteCombo toggles a combo in the user's favorites
func (h *AuthHandlers) PutFavoriteCombo(c *gin.Context) {
	h.toggleFavorite(c, false)
}

func (h *AuthHandlers) toggleFavorite(c *gin.Context, character bool) {
	userID := c.GetString(userIDKey)
	targetID := c.Param("id")

	var favorites any
	var err error
	if character {
		favorites, err = h.authService.ToggleFavoriteCharacter(userID, targetID)
	} else {
		favorites, err = h.authService.ToggleFavoriteCombo(userID, targetID)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AuthMiddleware validates the bearer token and stores the user id in the
// request context.
func (h *AuthHandlers) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString == "" || tokenString == authHeader {
			// Fall back to cookie auth
			if cookie, err := c.Cookie("auth_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
		if err != nil {
			h.logger.Auth().Warn("Unauthorized access attempt", "path", c.Request.URL.Path, "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		profile := security.GetProfileFromClaims(claims)
		if profile == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(userIDKey, profile.ID)
		c.Next()
	}
}
