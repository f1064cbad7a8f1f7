package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/pageza/macroplan/backend/internal/service"
)

// RecipeHandler serves the read-only recipe catalog
type RecipeHandler struct {
	registry *catalog.Registry
	images   service.ImageResolver
}

func NewRecipeHandler(registry *catalog.Registry, images service.ImageResolver) *RecipeHandler {
	return &RecipeHandler{
		registry: registry,
		images:   images,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes lists catalog recipes, optionally narrowed by meal type and
// comma-separated restrictions and preferences.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes := h.registry.Recipes()

	if mt := c.Query("meal_type"); mt != "" {
		mealType := model.MealType(mt)
		if !mealType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type: " + mt})
			return
		}
		recipes = catalog.FilterByMealType(recipes, mealType)
	}

	restrictions := splitQuery(c.Query("restrictions"))
	for _, r := range restrictions {
		if !catalog.IsRestriction(r) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown restriction: " + r})
			return
		}
	}
	preferences := splitQuery(c.Query("preferences"))
	for _, p := range preferences {
		if !catalog.IsPreference(p) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown preference: " + p})
			return
		}
	}
	recipes = catalog.FilterByPreferences(catalog.FilterByRestrictions(recipes, restrictions), preferences)

	out := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = h.response(c, r)
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": out,
		"count":   len(out),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.registry.Recipe(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, h.response(c, recipe))
}

func (h *RecipeHandler) response(c *gin.Context, r model.Recipe) RecipeResponse {
	resp := RecipeResponse{
		Recipe: r,
		Macros: h.registry.CalculateMacros(r, nil),
	}
	if h.images != nil && r.ImageRef != "" {
		url, err := h.images.ResolveImageURL(c.Request.Context(), r.ImageRef)
		if err != nil {
			log.Printf("Warning: failed to resolve image %s: %v", r.ImageRef, err)
		}
		resp.ImageURL = url
	}
	return resp
}

func splitQuery(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
