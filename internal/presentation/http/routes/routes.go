// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/ComboLab/combolab-go/internal/application/container"
	"github.com/ComboLab/combolab-go/internal/presentation/http/handlers"
	"github.com/ComboLab/combolab-go/internal/presentation/http/middleware"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Uploaded element icons are served straight from disk.
	r.Static("/media", config.MediaBasePath)

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	gameHandlers := handlers.NewGameHandlers(container.GameService, container.Logger)
	characterHandlers := handlers.NewCharacterHandlers(container.CharacterService, container.Logger)
	comboHandlers := handlers.NewComboHandlers(container.ComboService, container.Logger)
	notationHandlers := handlers.NewNotationHandlers(container.NotationService, container.ImageProcessor, container.Logger)
	sseHandlers := handlers.NewSSEHandlers(container.Broadcaster, container.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandlers.PostRegister)
			auth.POST("/login", authHandlers.PostLogin)
			auth.GET("/profile", authHandlers.AuthMiddleware(), authHandlers.GetProfile)
			auth.PUT("/favorites/characters/:id", authHandlers.AuthMiddleware(), authHandlers.PutFavoriteCharacter)
			auth.PUT("/favorites/combos/:id", authHandlers.AuthMiddleware(), authHandlers.PutFavoriteCombo)
		}

		// Games and their notation reference data
		games := api.Group("/games")
		{
			games.GET("", gameHandlers.GetGames)
			games.GET("/:id", gameHandlers.GetGameByID)
			games.POST("", authHandlers.AuthMiddleware(), gameHandlers.PostGame)
			games.PUT("/:id", authHandlers.AuthMiddleware(), gameHandlers.PutGame)
			games.DELETE("/:id", authHandlers.AuthMiddleware(), gameHandlers.DeleteGame)

			games.GET("/:id/characters", characterHandlers.GetCharactersByGame)
			games.POST("/:id/characters", authHandlers.AuthMiddleware(), characterHandlers.PostCharacter)

			games.GET("/:id/notation", notationHandlers.GetGameNotation)
			games.PUT("/:id/notation", authHandlers.AuthMiddleware(), notationHandlers.PutGameNotation)
			games.GET("/:id/notation/:categoryId/:elementId", notationHandlers.GetNotationElement)
			games.POST("/:id/notation/icons/:elementId", authHandlers.AuthMiddleware(), notationHandlers.PostElementIcon)

			games.GET("/:id/feed", sseHandlers.GetComboFeed)
		}

		// Characters and their combos
		characters := api.Group("/characters")
		{
			characters.GET("/:id", characterHandlers.GetCharacterByID)
			characters.PUT("/:id", authHandlers.AuthMiddleware(), characterHandlers.PutCharacter)
			characters.DELETE("/:id", authHandlers.AuthMiddleware(), characterHandlers.DeleteCharacter)

			characters.GET("/:id/combos", comboHandlers.GetCombosByCharacter)
			characters.POST("/:id/combos", authHandlers.AuthMiddleware(), comboHandlers.PostCombo)
		}

		// Combos
		combos := api.Group("/combos")
		{
			combos.GET("/:id", comboHandlers.GetComboByID)
			combos.GET("/:id/expanded", comboHandlers.GetExpandedCombo)
			combos.PUT("/:id", authHandlers.AuthMiddleware(), comboHandlers.PutCombo)
			combos.DELETE("/:id", authHandlers.AuthMiddleware(), comboHandlers.DeleteCombo)
			combos.PUT("/:id/like", authHandlers.AuthMiddleware(), comboHandlers.PutLike)
			combos.PUT("/:id/dislike", authHandlers.AuthMiddleware(), comboHandlers.PutDislike)
		}

		// Cache administration
		api.DELETE("/cache/notation", authHandlers.AuthMiddleware(), notationHandlers.DeleteNotationCache)
	}

	return r
}
