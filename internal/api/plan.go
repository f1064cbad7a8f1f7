package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/middleware"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/pageza/macroplan/backend/internal/service"
)

// PlanHandler serves stored meal plans to the profile that owns them
type PlanHandler struct {
	plans       service.IPlanService
	tokens      middleware.TokenValidator
	swapLimiter *middleware.RateLimiter
}

func NewPlanHandler(plans service.IPlanService, tokens middleware.TokenValidator, swapLimiter *middleware.RateLimiter) *PlanHandler {
	return &PlanHandler{
		plans:       plans,
		tokens:      tokens,
		swapLimiter: swapLimiter,
	}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans", middleware.AuthMiddleware(h.tokens))
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
		plans.DELETE("/:id", h.DeletePlan)

		swap := []gin.HandlerFunc{h.SwapMeal}
		if h.swapLimiter != nil {
			swap = append([]gin.HandlerFunc{h.swapLimiter.RateLimitMiddleware()}, swap...)
		}
		plans.POST("/:id/days/:day/meals/:order/swap", swap...)
	}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	plans, err := h.plans.ListPlans(c.Request.Context(), profileID)
	if err != nil {
		log.Printf("Error listing meal plans for profile %s: %v", profileID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list meal plans"})
		return
	}

	summaries := make([]PlanSummary, len(plans))
	for i, p := range plans {
		summaries[i] = summarize(p)
	}
	c.JSON(http.StatusOK, gin.H{
		"plans": summaries,
		"count": len(summaries),
	})
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	plan, ok := h.ownedPlan(c)
	if !ok {
		return
	}

	if err := h.plans.DeletePlan(c.Request.Context(), plan.ID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		log.Printf("Error deleting meal plan %s: %v", plan.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal plan"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SwapMeal replaces one meal of a stored plan with the closest other recipe
// of the same meal type.
func (h *PlanHandler) SwapMeal(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day number"})
		return
	}
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil || order < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal order"})
		return
	}

	plan, ok := h.ownedPlan(c)
	if !ok {
		return
	}

	updated, err := h.plans.SwapMeal(c.Request.Context(), plan.ID, day, order)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, service.ErrPlanNotFound), errors.Is(err, service.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoAlternative):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Error swapping meal in plan %s: %v", plan.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to swap meal"})
	}
}

// ownedPlan loads the plan named by the :id parameter. Plans of other
// profiles are reported as not found.
func (h *PlanHandler) ownedPlan(c *gin.Context) (*model.MealPlan, bool) {
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return nil, false
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return nil, false
		}
		log.Printf("Error loading meal plan %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal plan"})
		return nil, false
	}
	if plan.ProfileID != profileID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return nil, false
	}
	return plan, true
}
