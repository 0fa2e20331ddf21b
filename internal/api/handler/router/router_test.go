package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_AddRoutes(t *testing.T) {
	var calls []string
	track := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithJSONFallbacks(),
		WithRoutes(Route{
			Path:   "/v1/dashboard",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, "handler")
				w.WriteHeader(http.StatusOK)
			}),
			Middlewares: []func(http.Handler) http.Handler{track("primeiro"), track("segundo")},
		}),
	)

	t.Run("middlewares executam na ordem declarada", func(t *testing.T) {
		calls = nil
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"primeiro", "segundo", "handler"}, calls)
	})

	t.Run("rota inexistente responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
		assert.Contains(t, rec.Body.String(), `"code":"VAL_007"`)
	})

	t.Run("método não permitido responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL_008"`)
	})

	t.Run("rotas registradas", func(t *testing.T) {
		routes := rt.Routes()
		require.Len(t, routes, 1)
		assert.Equal(t, "/v1/dashboard", routes[0].Path)
	})
}
