package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/http/middlewarectx"
	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	logger := newNoopLogger()

	validToken, err := maker.GenerateToken("testuser", "admin")
	require.NoError(t, err)

	foreignMaker := jwt.NewMaker("other-secret", time.Hour)
	foreignToken, err := foreignMaker.GenerateToken("testuser", "admin")
	require.NoError(t, err)

	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		username := r.Context().Value(middlewarectx.User)
		role := r.Context().Value(middlewarectx.Role)
		assert.Equal(t, "testuser", username)
		assert.Equal(t, "admin", role)
		w.WriteHeader(http.StatusOK)
	})

	middleware := middlewarectx.JWTMiddleware(maker, logger)(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token signed with another key",
			authHeader:     "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not.a.token",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestRequireRole(t *testing.T) {
	logger := newNoopLogger()
	maker := jwt.NewMaker("test-secret", time.Hour)

	buildRequest := func(t *testing.T, role string) *http.Request {
		t.Helper()
		token, err := maker.GenerateToken("someone", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin/export/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	tests := []struct {
		name           string
		role           string
		allowed        []string
		wantStatusCode int
	}{
		{
			name:           "admin allowed",
			role:           "admin",
			allowed:        []string{"admin"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "staff allowed among several",
			role:           "staff",
			allowed:        []string{"admin", "staff"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "customer forbidden",
			role:           "customer",
			allowed:        []string{"admin", "staff"},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			chain := middlewarectx.JWTMiddleware(maker, logger)(
				middlewarectx.RequireRole(logger, tt.allowed...)(next))

			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, buildRequest(t, tt.role))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}

func TestRequireRole_БезКонтекстаРоли(t *testing.T) {
	logger := newNoopLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middlewarectx.RequireRole(logger, "admin")(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
