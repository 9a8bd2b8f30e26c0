package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/entities/notation"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/stores"
	"github.com/ComboLab/combolab-go/internal/infrastructure/media"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotationRepo struct{}

func (stubNotationRepo) FetchGameNotation(gameID string) (notation.NotationReference, error) {
	return notation.NotationReference{}, nil
}

func (stubNotationRepo) StoreGameNotation(gameID string, ref notation.NotationReference) error {
	return nil
}

func newTestNotationHandlers(t *testing.T) *NotationHandlers {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	svc := services.NewNotationService(stubNotationRepo{}, stores.NewContentStore(), logger)
	return NewNotationHandlers(svc, media.NewImageProcessor(t.TempDir()), logger)
}

func TestDeleteNotationCacheRequiresAdminPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestNotationHandlers(t)

	prev := config.AdminPassword
	config.AdminPassword = "letmein"
	t.Cleanup(func() { config.AdminPassword = prev })

	r := gin.New()
	r.DELETE("/cache/notation", h.DeleteNotationCache)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cache/notation", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cache/notation", nil)
	req.Header.Set("X-Admin-Password", "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/cache/notation", nil)
	req.Header.Set("X-Admin-Password", "letmein")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteNotationCacheClosedWithoutConfiguredPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestNotationHandlers(t)

	prev := config.AdminPassword
	config.AdminPassword = ""
	t.Cleanup(func() { config.AdminPassword = prev })

	r := gin.New()
	r.DELETE("/cache/notation", h.DeleteNotationCache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cache/notation", nil)
	req.Header.Set("X-Admin-Password", "")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
