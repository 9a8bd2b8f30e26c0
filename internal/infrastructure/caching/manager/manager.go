// Package manager provides the top-level cache manager that owns every
// cache store and exposes them behind their interfaces.
package manager

import (
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/interfaces"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/stores"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
)

// Manager aggregates cache stores and centralizes invalidation.
type Manager struct {
	content *stores.ContentStore
	logger  *logging.ChanneledLogger
}

// NewManager creates a cache manager with freshly initialized stores.
func NewManager(logger *logging.ChanneledLogger) *Manager {
	return &Manager{
		content: stores.NewContentStore(),
		logger:  logger,
	}
}

// Content returns the content cache behind its interface.
func (m *Manager) Content() interfaces.ContentCache {
	return m.content
}

// InvalidateAll clears every store.
func (m *Manager) InvalidateAll() {
	m.content.InvalidateContentCache()
	if m.logger != nil {
		m.logger.Cache().Info("All caches invalidated")
	}
}
