package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders(okHandler())

	t.Run("sets headers on every response", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))
		assert.Contains(t, recorder.Header().Get("Content-Security-Policy"), "default-src 'none'")
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("adds CORS headers for cross-origin requests", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/where/next-departures.json", nil)
		req.Header.Set("Origin", "https://example.com")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		called := false
		preflight := securityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("OPTIONS", "/api/where/next-departures.json", nil)
		req.Header.Set("Origin", "https://example.com")
		recorder := httptest.NewRecorder()
		preflight.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.False(t, called)
	})
}
