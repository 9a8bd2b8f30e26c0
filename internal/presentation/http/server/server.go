// Package server provides HTTP server initialization and management.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ComboLab/combolab-go/internal/application/container"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/internal/presentation/http/routes"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// Server wraps the HTTP server with configuration and dependency injection
type Server struct {
	httpServer *http.Server
	container  *container.Container
	logger     *logging.ChanneledLogger
}

// New creates a new HTTP server instance with dependency injection
func New(port string, container *container.Container) *Server {
	router := routes.SetupRoutes(container)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		container:  container,
		logger:     container.Logger,
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.logger.System().Info("HTTP server listening",
		"address", s.httpServer.Addr,
		"readTimeout", config.ServerReadTimeout,
		"writeTimeout", config.ServerWriteTimeout)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Shutdown().Info("Draining HTTP connections", "address", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
