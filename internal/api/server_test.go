package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/settingsfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/settings"
	"go.uber.org/mock/gomock"
)

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{SecretKey: "test"}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "0"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	settingsManager := settings.NewService(settingsfile.NewRepository(filepath.Join(t.TempDir(), "config.json")))

	srv, err := New(cfg, mocks.NewMockReporter(ctrl), settingsManager, authenticating.NewService(cfg), nil)
	require.NoError(t, err)

	t.Run("configuração padrão é criada na primeira leitura", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Body.String(), `"store_prize":1000`)
		assert.Contains(t, rec.Body.String(), `"daily_bonus":25`)

		current, err := settingsManager.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), current)
	})

	t.Run("token inválido é rejeitado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer invalido")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_007")
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_008")
	})
}
