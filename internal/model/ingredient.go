package model

// DietaryTags are the boolean dietary flags shared by ingredients and recipes.
type DietaryTags struct {
	Vegan           bool `json:"is_vegan"`
	Vegetarian      bool `json:"is_vegetarian"`
	DairyFree       bool `json:"is_dairy_free"`
	GlutenFree      bool `json:"is_gluten_free"`
	ContainsPork    bool `json:"contains_pork"`
	ContainsSeafood bool `json:"contains_seafood"`
	ContainsNuts    bool `json:"contains_nuts"`
	HighProtein     bool `json:"is_high_protein"`
}

// Ingredient is a catalog entry with macros per 100g.
type Ingredient struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	CaloriesPer100g float64     `json:"calories_per_100g"`
	ProteinPer100g  float64     `json:"protein_per_100g"`
	CarbsPer100g    float64     `json:"carbs_per_100g"`
	FatPer100g      float64     `json:"fat_per_100g"`
	Tags            DietaryTags `json:"tags"`
}
