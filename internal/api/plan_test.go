package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPlan(t *testing.T, env *testEnv, profileID string) model.MealPlan {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/webhooks/plan-generation", validPlanRequest(profileID), webhookHeaders(""))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp planEnvelope
	decode(t, w, &resp)
	return resp.Plan
}

func TestPlanRoutesRequireAuth(t *testing.T) {
	env := setupTestRouter(t, 10)

	w := env.do(t, http.MethodGet, "/api/v1/plans", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/plans", nil, bearer("not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAndGetPlans(t *testing.T) {
	env := setupTestRouter(t, 10)
	plan := createPlan(t, env, "profile-1")
	createPlan(t, env, "profile-2")
	token := env.tokenFor(t, "profile-1")

	w := env.do(t, http.MethodGet, "/api/v1/plans", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list struct {
		Plans []PlanSummary `json:"plans"`
		Count int           `json:"count"`
	}
	decode(t, w, &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, plan.ID.String(), list.Plans[0].ID)
	assert.Equal(t, 3, list.Plans[0].Days)
	assert.Equal(t, "2025-01-06", list.Plans[0].StartDate)
	assert.Greater(t, list.Plans[0].AvgCalories, 0.0)
	assert.Greater(t, list.Plans[0].AvgProteinG, 0.0)

	w = env.do(t, http.MethodGet, "/api/v1/plans/"+plan.ID.String(), nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	var got model.MealPlan
	decode(t, w, &got)
	assert.Equal(t, plan.ID, got.ID)
	assert.Len(t, got.Days, 3)
}

func TestGetPlanOwnership(t *testing.T) {
	env := setupTestRouter(t, 10)
	plan := createPlan(t, env, "profile-1")
	other := env.tokenFor(t, "profile-2")

	w := env.do(t, http.MethodGet, "/api/v1/plans/"+plan.ID.String(), nil, bearer(other))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/plans/"+plan.ID.String(), nil, bearer(other))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/plans/not-a-uuid", nil, bearer(other))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/plans/"+uuid.NewString(), nil, bearer(other))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePlan(t *testing.T) {
	env := setupTestRouter(t, 10)
	plan := createPlan(t, env, "profile-1")
	token := env.tokenFor(t, "profile-1")
	path := "/api/v1/plans/" + plan.ID.String()

	w := env.do(t, http.MethodDelete, path, nil, bearer(token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, path, nil, bearer(token))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwapMeal(t *testing.T) {
	env := setupTestRouter(t, 10)
	plan := createPlan(t, env, "profile-1")
	token := env.tokenFor(t, "profile-1")

	_, before := plan.FindMeal(1, 1)
	require.NotNil(t, before)

	path := fmt.Sprintf("/api/v1/plans/%s/days/1/meals/1/swap", plan.ID)
	w := env.do(t, http.MethodPost, path, nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.MealPlan
	decode(t, w, &updated)
	_, after := updated.FindMeal(1, 1)
	require.NotNil(t, after)
	assert.NotEqual(t, before.RecipeID, after.RecipeID)
	assert.Equal(t, before.MealType, after.MealType)

	// other days are untouched
	_, otherBefore := plan.FindMeal(2, 1)
	_, otherAfter := updated.FindMeal(2, 1)
	assert.Equal(t, otherBefore.RecipeID, otherAfter.RecipeID)
}

func TestSwapMealErrors(t *testing.T) {
	env := setupTestRouter(t, 10)
	plan := createPlan(t, env, "profile-1")
	token := env.tokenFor(t, "profile-1")

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"bad day", fmt.Sprintf("/api/v1/plans/%s/days/x/meals/1/swap", plan.ID), http.StatusBadRequest},
		{"bad order", fmt.Sprintf("/api/v1/plans/%s/days/1/meals/0/swap", plan.ID), http.StatusBadRequest},
		{"missing day", fmt.Sprintf("/api/v1/plans/%s/days/9/meals/1/swap", plan.ID), http.StatusNotFound},
		{"missing meal", fmt.Sprintf("/api/v1/plans/%s/days/1/meals/9/swap", plan.ID), http.StatusNotFound},
		{"missing plan", fmt.Sprintf("/api/v1/plans/%s/days/1/meals/1/swap", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, tt.path, nil, bearer(token))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
