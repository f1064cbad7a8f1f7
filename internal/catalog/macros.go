package catalog

import "github.com/pageza/macroplan/backend/internal/model"

// MacroResult is the output of CalculateMacros. Totals and every breakdown
// line are rounded to one decimal place.
type MacroResult struct {
	Calories  float64                `json:"calories"`
	ProteinG  float64                `json:"protein_g"`
	FatG      float64                `json:"fat_g"`
	CarbG     float64                `json:"carb_g"`
	Breakdown []model.MealIngredient `json:"ingredient_breakdown"`
	// Missing lists ingredient ids that were skipped because the registry
	// does not know them.
	Missing []string `json:"missing,omitempty"`
}

// Macros returns the totals as a model.Macros.
func (m MacroResult) Macros() model.Macros {
	return model.Macros{Calories: m.Calories, Protein: m.ProteinG, Fat: m.FatG, Carbs: m.CarbG}
}

// CalculateMacros sums the macros of a recipe. Gram amounts come from
// overrides when present for an ingredient id, otherwise from the recipe.
// Unknown ingredients contribute zero and are listed in Missing.
func (r *Registry) CalculateMacros(recipe model.Recipe, overrides map[string]float64) MacroResult {
	var (
		res                      MacroResult
		cal, protein, fat, carbs float64
	)
	res.Breakdown = make([]model.MealIngredient, 0, len(recipe.Ingredients))

	for _, line := range recipe.Ingredients {
		ing, ok := r.ingredients[line.IngredientID]
		if !ok {
			res.Missing = append(res.Missing, line.IngredientID)
			continue
		}

		grams := line.Grams
		if g, ok := overrides[line.IngredientID]; ok {
			grams = g
		}
		f := grams / 100

		c := ing.CaloriesPer100g * f
		p := ing.ProteinPer100g * f
		fa := ing.FatPer100g * f
		cb := ing.CarbsPer100g * f
		cal += c
		protein += p
		fat += fa
		carbs += cb

		res.Breakdown = append(res.Breakdown, model.MealIngredient{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Grams:        model.Round1(grams),
			Calories:     model.Round1(c),
			ProteinG:     model.Round1(p),
			CarbsG:       model.Round1(cb),
			FatG:         model.Round1(fa),
		})
	}

	res.Calories = model.Round1(cal)
	res.ProteinG = model.Round1(protein)
	res.FatG = model.Round1(fat)
	res.CarbG = model.Round1(carbs)
	return res
}
