package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/middleware"
	"github.com/pageza/macroplan/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Meal plan API is running",
		"version": "v1.0.0",
	})
}

// Dependencies are the services the HTTP API is built from. Images and the
// rate limiters are optional.
type Dependencies struct {
	Plans             service.IPlanService
	Tokens            middleware.TokenValidator
	Registry          *catalog.Registry
	Images            service.ImageResolver
	PlanLimiter       *middleware.RateLimiter
	SwapLimiter       *middleware.RateLimiter
	WebhookSecretHash string
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	NewWebhookHandler(deps.Plans, deps.PlanLimiter, deps.WebhookSecretHash).RegisterRoutes(v1)
	NewRecipeHandler(deps.Registry, deps.Images).RegisterRoutes(v1)
	NewPlanHandler(deps.Plans, deps.Tokens, deps.SwapLimiter).RegisterRoutes(v1)
}
