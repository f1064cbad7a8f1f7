package api

import (
	"net/http"
	"testing"

	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeList struct {
	Recipes []RecipeResponse `json:"recipes"`
	Count   int              `json:"count"`
}

func TestListRecipes(t *testing.T) {
	env := setupTestRouter(t, 10)

	w := env.do(t, http.MethodGet, "/api/v1/recipes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all recipeList
	decode(t, w, &all)
	assert.Equal(t, len(all.Recipes), all.Count)
	assert.NotZero(t, all.Count)
	for _, r := range all.Recipes {
		assert.Greater(t, r.Macros.Calories, 0.0, r.ID)
	}

	w = env.do(t, http.MethodGet, "/api/v1/recipes?meal_type=breakfast", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var breakfasts recipeList
	decode(t, w, &breakfasts)
	assert.NotZero(t, breakfasts.Count)
	assert.Less(t, breakfasts.Count, all.Count)
	for _, r := range breakfasts.Recipes {
		assert.Equal(t, model.Breakfast, r.MealType)
	}
}

func TestListRecipesFilters(t *testing.T) {
	env := setupTestRouter(t, 10)

	w := env.do(t, http.MethodGet, "/api/v1/recipes?restrictions=vegan,%20no-nuts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vegan recipeList
	decode(t, w, &vegan)
	for _, r := range vegan.Recipes {
		assert.True(t, r.Tags.Vegan, r.ID)
		assert.False(t, r.Tags.ContainsNuts, r.ID)
	}

	w = env.do(t, http.MethodGet, "/api/v1/recipes?preferences=high-protein", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var protein recipeList
	decode(t, w, &protein)
	for _, r := range protein.Recipes {
		assert.True(t, r.Tags.HighProtein, r.ID)
	}
}

func TestListRecipesRejectsUnknownFilters(t *testing.T) {
	env := setupTestRouter(t, 10)

	for _, q := range []string{"meal_type=brunch", "restrictions=keto", "preferences=spicy"} {
		w := env.do(t, http.MethodGet, "/api/v1/recipes?"+q, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetRecipe(t *testing.T) {
	env := setupTestRouter(t, 10)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/oat-banana-bowl", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var r RecipeResponse
	decode(t, w, &r)
	assert.Equal(t, "oat-banana-bowl", r.ID)
	assert.Equal(t, model.Breakfast, r.MealType)
	assert.NotEmpty(t, r.Macros.Breakdown)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	env := setupTestRouter(t, 10)

	w := env.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
}
