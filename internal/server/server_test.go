package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/macroplan/backend/config"
	"github.com/pageza/macroplan/backend/internal/api"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/service"
	"github.com/pageza/macroplan/backend/internal/testhelpers"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	registry := catalog.MustDefault()
	cfg := &config.Config{
		Environment: config.Test,
		ServerHost:  "localhost",
		ServerPort:  "8080",
		CORSOrigins: []string{"https://app.example.com"},
	}

	return New(cfg, db, api.Dependencies{
		Plans:    service.NewPlanService(db, service.NewPlanGenerator(registry), nil, nil, nil),
		Tokens:   service.NewTokenService("test-secret", time.Hour),
		Registry: registry,
	})
}

func TestNew(t *testing.T) {
	server := newTestServer(t)
	assert.Equal(t, "localhost:8080", server.http.Addr)

	for _, path := range []string{"/health", "/ready", "/api/v1/recipes"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		server.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNoRoute(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestCORSHeaders(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestReadyFailsWithoutDatabase(t *testing.T) {
	server := newTestServer(t)
	sqlDB, err := server.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
