package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/middleware"
	"github.com/pageza/macroplan/backend/internal/service"
	"github.com/pageza/macroplan/backend/internal/testhelpers"
	"github.com/pageza/macroplan/backend/internal/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testWebhookSecret = "test-webhook-secret"

// testEnv is a fully wired router backed by SQLite and miniredis
type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *miniredis.Miniredis
	Tokens *service.TokenService
	Plans  *service.PlanService
}

func setupTestRouter(t *testing.T, planLimit int) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	client, mr := testhelpers.SetupTestRedis(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(testWebhookSecret), bcrypt.MinCost)
	require.NoError(t, err)

	registry := catalog.MustDefault()
	clock := func() time.Time { return time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC) }
	generator := service.NewPlanGenerator(registry, service.WithClock(clock))
	plans := service.NewPlanService(db, generator,
		service.NewRedisIdempotencyStore(client, service.IdempotencyWindow), nil, nil)
	tokens := service.NewTokenService("test-jwt-secret", time.Hour)

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.ErrorHandler())
	RegisterRoutes(router, Dependencies{
		Plans:             plans,
		Tokens:            tokens,
		Registry:          registry,
		PlanLimiter:       middleware.NewPlanGenerationRateLimiter(client, planLimit),
		SwapLimiter:       middleware.NewMealSwapRateLimiter(client),
		WebhookSecretHash: string(hash),
	})

	return &testEnv{
		Router: router,
		DB:     db,
		Redis:  mr,
		Tokens: tokens,
		Plans:  plans,
	}
}

// tokenFor issues a bearer token for profileID
func (e *testEnv) tokenFor(t *testing.T, profileID string) string {
	t.Helper()
	token, err := e.Tokens.GenerateToken(&types.TokenClaims{
		UserID:    uuid.New(),
		ProfileID: profileID,
	})
	require.NoError(t, err)
	return token
}

// do sends a request through the router. body is JSON encoded when not nil.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func webhookHeaders(idempotencyKey string) map[string]string {
	h := map[string]string{middleware.WebhookSecretHeader: testWebhookSecret}
	if idempotencyKey != "" {
		h[IdempotencyKeyHeader] = idempotencyKey
	}
	return h
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func validPlanRequest(profileID string) map[string]interface{} {
	return map[string]interface{}{
		"profile_id":        profileID,
		"days":              3,
		"calories_target":   2200,
		"protein_target_g":  160,
		"fat_target_g":      70,
		"carb_target_g":     230,
		"workouts_per_week": 3,
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

