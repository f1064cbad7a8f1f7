package model

// MealType is the closed set of meal categories a recipe belongs to.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// RecipeIngredient is one line of a recipe: an ingredient id and its default grams.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredient_id"`
	Grams        float64 `json:"grams"`
}

// Recipe is a catalog recipe. Tags are authored per recipe, not derived
// from the ingredients.
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	MealType    MealType           `json:"meal_type"`
	Description string             `json:"description"`
	ImageRef    string             `json:"image_ref"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Tags        DietaryTags        `json:"tags"`
	Simple      bool               `json:"is_simple"`
	EasyToCook  bool               `json:"is_easy_to_cook"`
}
