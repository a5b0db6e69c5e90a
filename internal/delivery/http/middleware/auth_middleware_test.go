package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-booking-backend/config"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware() (*AuthMiddleware, *jwt.JWTService) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	// The rejection paths under test never issue a Redis command, so the
	// client is deliberately left undialed.
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	return NewAuthMiddleware(jwtService, redisClient), jwtService
}

func runAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)

	return rec, nextCalled
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	rec, nextCalled := runAuth(t, m, "")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	rec, nextCalled := runAuth(t, m, "Token abc.def.ghi")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	rec, nextCalled := runAuth(t, m, "Bearer not-a-jwt")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()

	token, _, err := jwtService.GenerateRefreshToken(uuid.New(), "player@example.com", entity.RoleIDPlayer)
	require.NoError(t, err)

	rec, nextCalled := runAuth(t, m, "Bearer "+token)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()

	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "player@example.com", 9)
	require.NoError(t, err)

	rec, nextCalled := runAuth(t, m, "Bearer "+token)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
