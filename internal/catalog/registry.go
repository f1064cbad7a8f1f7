// Package catalog holds the read-only ingredient and recipe catalog used by
// the plan generator, together with the macro calculator and recipe filters.
package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pageza/macroplan/backend/internal/model"
)

var (
	ErrDuplicateIngredient = errors.New("duplicate ingredient id")
	ErrDuplicateRecipe     = errors.New("duplicate recipe id")
	ErrInvalidMealType     = errors.New("invalid meal type")
	ErrDuplicateLine       = errors.New("ingredient listed twice in recipe")
)

// DanglingReference is a recipe line pointing at an ingredient id the
// registry does not know.
type DanglingReference struct {
	RecipeID     string
	IngredientID string
}

// Registry is an immutable catalog built once at startup. It is safe for
// concurrent use.
type Registry struct {
	ingredients map[string]model.Ingredient
	recipes     []model.Recipe
	recipeIndex map[string]int
	dangling    []DanglingReference
}

// NewRegistry builds a registry from ingredient and recipe lists. Duplicate
// ids, unknown meal types and recipes listing an ingredient twice are
// rejected. Recipes referencing unknown
// ingredients are accepted, logged, and reported by DanglingReferences.
func NewRegistry(ingredients []model.Ingredient, recipes []model.Recipe) (*Registry, error) {
	r := &Registry{
		ingredients: make(map[string]model.Ingredient, len(ingredients)),
		recipes:     make([]model.Recipe, 0, len(recipes)),
		recipeIndex: make(map[string]int, len(recipes)),
	}

	for _, ing := range ingredients {
		if _, ok := r.ingredients[ing.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIngredient, ing.ID)
		}
		r.ingredients[ing.ID] = ing
	}

	for _, rec := range recipes {
		if _, ok := r.recipeIndex[rec.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRecipe, rec.ID)
		}
		if !rec.MealType.Valid() {
			return nil, fmt.Errorf("%w %q on recipe %s", ErrInvalidMealType, rec.MealType, rec.ID)
		}
		seen := make(map[string]bool, len(rec.Ingredients))
		for _, line := range rec.Ingredients {
			if seen[line.IngredientID] {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateLine, line.IngredientID, rec.ID)
			}
			seen[line.IngredientID] = true
			if _, ok := r.ingredients[line.IngredientID]; !ok {
				r.dangling = append(r.dangling, DanglingReference{RecipeID: rec.ID, IngredientID: line.IngredientID})
			}
		}
		r.recipeIndex[rec.ID] = len(r.recipes)
		r.recipes = append(r.recipes, cloneRecipe(rec))
	}

	if len(r.dangling) > 0 {
		refs := make([]string, len(r.dangling))
		for i, d := range r.dangling {
			refs[i] = d.RecipeID + "->" + d.IngredientID
		}
		log.Printf("Warning: catalog has %d unknown ingredient references, their macros count as zero: %s",
			len(r.dangling), strings.Join(refs, ", "))
	}

	return r, nil
}

// MustDefault returns the built-in catalog and panics if it is malformed.
func MustDefault() *Registry {
	r, err := NewRegistry(DefaultIngredients(), DefaultRecipes())
	if err != nil {
		panic(fmt.Sprintf("catalog: default catalog is invalid: %v", err))
	}
	return r
}

// Ingredient looks up an ingredient by id.
func (r *Registry) Ingredient(id string) (model.Ingredient, bool) {
	ing, ok := r.ingredients[id]
	return ing, ok
}

// Recipe looks up a recipe by id.
func (r *Registry) Recipe(id string) (model.Recipe, bool) {
	i, ok := r.recipeIndex[id]
	if !ok {
		return model.Recipe{}, false
	}
	return cloneRecipe(r.recipes[i]), true
}

// Recipes returns a copy of every recipe in catalog order.
func (r *Registry) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(r.recipes))
	for i, rec := range r.recipes {
		out[i] = cloneRecipe(rec)
	}
	return out
}

// IngredientCount returns the number of registered ingredients.
func (r *Registry) IngredientCount() int {
	return len(r.ingredients)
}

// DanglingReferences lists recipe lines whose ingredient is not registered.
func (r *Registry) DanglingReferences() []DanglingReference {
	out := make([]DanglingReference, len(r.dangling))
	copy(out, r.dangling)
	return out
}

func cloneRecipe(rec model.Recipe) model.Recipe {
	lines := make([]model.RecipeIngredient, len(rec.Ingredients))
	copy(lines, rec.Ingredients)
	rec.Ingredients = lines
	return rec
}
