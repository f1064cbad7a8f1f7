package catalog_test

import (
	"testing"

	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry([]model.Ingredient{
		{ID: "chicken", Name: "Chicken", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
		{ID: "rice", Name: "Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3},
	}, nil)
	require.NoError(t, err)
	return reg
}

func TestCalculateMacros(t *testing.T) {
	reg := testRegistry(t)
	recipe := model.Recipe{
		ID:       "chicken-rice",
		MealType: model.Dinner,
		Ingredients: []model.RecipeIngredient{
			{IngredientID: "chicken", Grams: 200},
			{IngredientID: "rice", Grams: 100},
		},
	}

	res := reg.CalculateMacros(recipe, nil)

	assert.Equal(t, 460.0, res.Calories)
	assert.Equal(t, 64.7, res.ProteinG)
	assert.Equal(t, 7.5, res.FatG)
	assert.Equal(t, 28.0, res.CarbG)
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, model.MealIngredient{
		IngredientID: "chicken",
		Name:         "Chicken",
		Grams:        200,
		Calories:     330,
		ProteinG:     62,
		CarbsG:       0,
		FatG:         7.2,
	}, res.Breakdown[0])
	assert.Empty(t, res.Missing)
}

func TestCalculateMacrosOverrides(t *testing.T) {
	reg := testRegistry(t)
	recipe := model.Recipe{
		ID:          "plain-chicken",
		MealType:    model.Lunch,
		Ingredients: []model.RecipeIngredient{{IngredientID: "chicken", Grams: 100}},
	}

	res := reg.CalculateMacros(recipe, map[string]float64{"chicken": 50})

	assert.Equal(t, 82.5, res.Calories)
	assert.Equal(t, 15.5, res.ProteinG)
	assert.Equal(t, 50.0, res.Breakdown[0].Grams)
	// the recipe itself is untouched
	assert.Equal(t, float64(100), recipe.Ingredients[0].Grams)
}

func TestCalculateMacrosSkipsUnknownIngredients(t *testing.T) {
	reg := testRegistry(t)
	recipe := model.Recipe{
		ID:       "mystery",
		MealType: model.Lunch,
		Ingredients: []model.RecipeIngredient{
			{IngredientID: "rice", Grams: 100},
			{IngredientID: "unicorn", Grams: 300},
		},
	}

	res := reg.CalculateMacros(recipe, nil)

	assert.Equal(t, 130.0, res.Calories)
	assert.Len(t, res.Breakdown, 1)
	assert.Equal(t, []string{"unicorn"}, res.Missing)
}

func TestCalculateMacrosRounding(t *testing.T) {
	reg := testRegistry(t)
	recipe := model.Recipe{
		ID:          "odd",
		MealType:    model.Snack,
		Ingredients: []model.RecipeIngredient{{IngredientID: "rice", Grams: 33.33}},
	}

	res := reg.CalculateMacros(recipe, nil)

	assert.Equal(t, 43.3, res.Calories)
	assert.Equal(t, 0.9, res.ProteinG)
	assert.Equal(t, 0.1, res.FatG)
	assert.Equal(t, 9.3, res.CarbG)
	assert.Equal(t, 33.3, res.Breakdown[0].Grams)
}

func TestCalculateMacrosEmptyRecipe(t *testing.T) {
	res := testRegistry(t).CalculateMacros(model.Recipe{ID: "empty", MealType: model.Snack}, nil)
	assert.Zero(t, res.Calories)
	assert.Empty(t, res.Breakdown)
	assert.Equal(t, model.Macros{}, res.Macros())
}
