package model

import "math"

// Macros represents nutrition totals for a meal, a slot target or a day.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_g"`
	Carbs    float64 `json:"carb_g"`
}

// Scale returns m with every field multiplied by f.
func (m Macros) Scale(f float64) Macros {
	return Macros{
		Calories: m.Calories * f,
		Protein:  m.Protein * f,
		Fat:      m.Fat * f,
		Carbs:    m.Carbs * f,
	}
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
