package api

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pageza/macroplan/backend/internal/middleware"
	"github.com/pageza/macroplan/backend/internal/service"
)

// IdempotencyKeyHeader lets webhook callers retry without creating duplicates
const IdempotencyKeyHeader = "Idempotency-Key"

type WebhookHandler struct {
	plans      service.IPlanService
	limiter    *middleware.RateLimiter
	secretHash string
}

func NewWebhookHandler(plans service.IPlanService, limiter *middleware.RateLimiter, secretHash string) *WebhookHandler {
	return &WebhookHandler{
		plans:      plans,
		limiter:    limiter,
		secretHash: secretHash,
	}
}

func (h *WebhookHandler) RegisterRoutes(router *gin.RouterGroup) {
	hooks := router.Group("/webhooks", middleware.WebhookSecret(h.secretHash))
	{
		hooks.POST("/plan-generation", h.GeneratePlan)
	}
}

// GeneratePlan validates the payload, generates a plan and stores it.
// A repeated Idempotency-Key replays the stored plan with 200.
func (h *WebhookHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := bindingError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		return
	}

	params, err := req.Validate()
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// retries of a request that already succeeded are not charged
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	if plan, ok := h.plans.Replay(c.Request.Context(), params.ProfileID, key); ok {
		if h.limiter != nil {
			h.limiter.Report(c, params.ProfileID)
		}
		c.JSON(http.StatusOK, gin.H{
			"plan":     plan,
			"replayed": true,
		})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c, params.ProfileID) {
		return
	}

	plan, replayed, err := h.plans.Generate(c.Request.Context(), params, key)
	if err != nil {
		log.Printf("Error generating meal plan for profile %s: %v", params.ProfileID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan"})
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"plan":     plan,
		"replayed": replayed,
	})
}

// bindingError converts a gin binding failure into a ValidationError named
// by JSON fields.
func bindingError(err error) *ValidationError {
	verr := &ValidationError{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("body", "malformed JSON: %v", err)
		return verr
	}

	reqType := reflect.TypeOf(GeneratePlanRequest{})
	for _, fe := range fieldErrs {
		name := fe.Field()
		if f, ok := reqType.FieldByName(fe.StructField()); ok {
			name = strings.Split(f.Tag.Get("json"), ",")[0]
		}
		switch fe.Tag() {
		case "required":
			verr.add(name, "is required")
		case "gt":
			verr.add(name, "must be greater than %s", fe.Param())
		case "min", "max":
			verr.add(name, "must be between 1 and %d", MaxPlanDays)
		default:
			verr.add(name, "failed %s validation", fe.Tag())
		}
	}
	return verr
}
