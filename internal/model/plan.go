package model

import "time"

// WaterTargetGlasses is the daily water target attached to every plan day.
const WaterTargetGlasses = 8

// MealIngredient is a resolved ingredient line of a generated meal.
type MealIngredient struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Grams        float64 `json:"grams"`
	Calories     float64 `json:"calories"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// Meal is one slot of a plan day filled with a scaled recipe.
type Meal struct {
	MealType    MealType         `json:"meal_type"`
	MealOrder   int              `json:"meal_order"`
	RecipeID    string           `json:"recipe_id"`
	RecipeName  string           `json:"recipe_name"`
	ImageRef    string           `json:"image_ref"`
	ImageURL    string           `json:"image_url,omitempty"`
	Description string           `json:"description"`
	Calories    float64          `json:"calories"`
	ProteinG    float64          `json:"protein_g"`
	FatG        float64          `json:"fat_g"`
	CarbG       float64          `json:"carb_g"`
	Ingredients []MealIngredient `json:"ingredients"`
}

// Day is a single calendar day of a plan.
type Day struct {
	DayNumber          int       `json:"day_number"`
	Date               time.Time `json:"date"`
	IsWorkoutDay       bool      `json:"is_workout_day"`
	WaterTargetGlasses int       `json:"water_target_glasses"`
	Meals              []Meal    `json:"meals"`
}

// Totals sums the macros of every meal of the day.
func (d Day) Totals() Macros {
	var m Macros
	for _, meal := range d.Meals {
		m.Calories += meal.Calories
		m.Protein += meal.ProteinG
		m.Fat += meal.FatG
		m.Carbs += meal.CarbG
	}
	return Macros{
		Calories: Round1(m.Calories),
		Protein:  Round1(m.Protein),
		Fat:      Round1(m.Fat),
		Carbs:    Round1(m.Carbs),
	}
}

// PlanData is the output of one plan generation.
type PlanData struct {
	ProfileID       string    `json:"profile_id"`
	Title           string    `json:"title"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Source          string    `json:"source"`
	CaloriesTarget  float64   `json:"calories_target"`
	ProteinTargetG  float64   `json:"protein_target_g"`
	FatTargetG      float64   `json:"fat_target_g"`
	CarbTargetG     float64   `json:"carb_target_g"`
	WorkoutsPerWeek int       `json:"workouts_per_week"`
	Days            []Day     `json:"days"`
}
