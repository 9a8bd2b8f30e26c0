// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ComboLab/combolab-go/internal/application/container"
	"github.com/ComboLab/combolab-go/internal/infrastructure/email"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/persistence/database"
	"github.com/ComboLab/combolab-go/internal/presentation/http/server"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("ComboLab starting...")

	// Step 1: Validate configuration
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	// Step 2: Initialize channeled logging
	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()
	logger.Startup().Info("Channeled logging initialized")

	// Step 3: Open database connection
	logger.Startup().Info("Opening database connection...", "driver", config.DBDriver)
	db, err := database.NewConnectionWithLogger(config.DBDriver, config.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Step 4: Create schema and seed
	logger.Startup().Info("Ensuring database schema...")
	tableCreator := database.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Step 5: Initialize email service (optional)
	var emailService email.Service
	if svc, err := email.NewService(); err != nil {
		logger.Startup().Warn("Email service not configured, welcome emails disabled", "reason", err.Error())
	} else {
		emailService = svc
		logger.Startup().Info("Email service initialized")
	}

	// Step 6: Create dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer := container.NewContainer(db, logger, emailService)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 7: Seed initial content on an empty database
	logger.Startup().Info("Seeding initial content...")
	if err := database.SeedInitialContent(db.DB, appContainer.NotationRepo); err != nil {
		return fmt.Errorf("failed to seed initial content: %w", err)
	}

	// Step 8: Start HTTP server
	logger.Startup().Info("Starting HTTP server...")
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
