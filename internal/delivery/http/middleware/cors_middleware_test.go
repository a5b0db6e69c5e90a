package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCORS(t *testing.T, m *CORSMiddleware, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(method, "/api/v1/locations", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	return rec, nextCalled
}

func TestCORSDefaultsToWildcard(t *testing.T) {
	m := NewCORSMiddleware(nil)

	rec, nextCalled := runCORS(t, m, http.MethodGet, "https://app.example.com")
	assert.True(t, nextCalled)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example.com"})

	rec, nextCalled := runCORS(t, m, http.MethodGet, "https://app.example.com")
	assert.True(t, nextCalled)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORSOmitsHeaderForUnknownOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example.com"})

	rec, nextCalled := runCORS(t, m, http.MethodGet, "https://evil.example.com")
	assert.True(t, nextCalled)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSShortCircuitsPreflight(t *testing.T) {
	m := NewCORSMiddleware(nil)

	rec, nextCalled := runCORS(t, m, http.MethodOptions, "https://app.example.com")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
