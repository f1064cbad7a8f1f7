package catalog

import "github.com/pageza/macroplan/backend/internal/model"

// DefaultIngredients returns the built-in ingredient list.
func DefaultIngredients() []model.Ingredient {
	plant := model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true}

	return []model.Ingredient{
		{ID: "chicken-breast", Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6,
			Tags: model.DietaryTags{DairyFree: true, GlutenFree: true, HighProtein: true}},
		{ID: "salmon", Name: "Salmon Fillet", CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13,
			Tags: model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsSeafood: true, HighProtein: true}},
		{ID: "shrimp", Name: "Shrimp", CaloriesPer100g: 99, ProteinPer100g: 24, CarbsPer100g: 0.2, FatPer100g: 0.3,
			Tags: model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsSeafood: true, HighProtein: true}},
		{ID: "pork-tenderloin", Name: "Pork Tenderloin", CaloriesPer100g: 143, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 3.5,
			Tags: model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsPork: true, HighProtein: true}},
		{ID: "eggs", Name: "Whole Eggs", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11,
			Tags: model.DietaryTags{Vegetarian: true, DairyFree: true, GlutenFree: true, HighProtein: true}},
		{ID: "greek-yogurt", Name: "Greek Yogurt (nonfat)", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4,
			Tags: model.DietaryTags{Vegetarian: true, GlutenFree: true, HighProtein: true}},
		{ID: "tofu", Name: "Firm Tofu", CaloriesPer100g: 144, ProteinPer100g: 17, CarbsPer100g: 2.8, FatPer100g: 8.7,
			Tags: model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, HighProtein: true}},
		{ID: "oats", Name: "Rolled Oats", CaloriesPer100g: 389, ProteinPer100g: 16.9, CarbsPer100g: 66.3, FatPer100g: 6.9,
			Tags: model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true}},
		{ID: "brown-rice", Name: "Brown Rice (cooked)", CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 23.5, FatPer100g: 0.9, Tags: plant},
		{ID: "quinoa", Name: "Quinoa (cooked)", CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21.3, FatPer100g: 1.9, Tags: plant},
		{ID: "sweet-potato", Name: "Sweet Potato", CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20.1, FatPer100g: 0.1, Tags: plant},
		{ID: "broccoli", Name: "Broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 6.6, FatPer100g: 0.4, Tags: plant},
		{ID: "spinach", Name: "Spinach", CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4, Tags: plant},
		{ID: "banana", Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 22.8, FatPer100g: 0.3, Tags: plant},
		{ID: "avocado", Name: "Avocado", CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 8.5, FatPer100g: 14.7, Tags: plant},
		{ID: "almonds", Name: "Almonds", CaloriesPer100g: 579, ProteinPer100g: 21.2, CarbsPer100g: 21.6, FatPer100g: 49.9,
			Tags: model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, ContainsNuts: true}},
		{ID: "whole-wheat-bread", Name: "Whole Wheat Bread", CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4,
			Tags: model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true}},
	}
}

func lines(pairs ...interface{}) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.RecipeIngredient{IngredientID: pairs[i].(string), Grams: float64(pairs[i+1].(int))})
	}
	return out
}

// DefaultRecipes returns the built-in recipe list in catalog order.
func DefaultRecipes() []model.Recipe {
	return []model.Recipe{
		// breakfast
		{ID: "oat-banana-bowl", Name: "Oat & Banana Bowl", MealType: model.Breakfast,
			Description: "Rolled oats cooked with sliced banana and topped with almonds.",
			ImageRef:    "recipes/oat-banana-bowl.jpg",
			Ingredients: lines("oats", 60, "banana", 100, "almonds", 15),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, ContainsNuts: true},
			Simple:      true, EasyToCook: true},
		{ID: "greek-yogurt-parfait", Name: "Greek Yogurt Parfait", MealType: model.Breakfast,
			Description: "Layers of greek yogurt, toasted oats and banana.",
			ImageRef:    "recipes/greek-yogurt-parfait.jpg",
			Ingredients: lines("greek-yogurt", 250, "oats", 30, "banana", 60),
			Tags:        model.DietaryTags{Vegetarian: true, HighProtein: true},
			Simple:      true, EasyToCook: true},
		{ID: "veggie-egg-scramble", Name: "Veggie Egg Scramble", MealType: model.Breakfast,
			Description: "Soft scrambled eggs with wilted spinach and whole wheat toast.",
			ImageRef:    "recipes/veggie-egg-scramble.jpg",
			Ingredients: lines("eggs", 150, "spinach", 60, "whole-wheat-bread", 60),
			Tags:        model.DietaryTags{Vegetarian: true, DairyFree: true, HighProtein: true},
			EasyToCook:  true},
		{ID: "avocado-egg-toast", Name: "Avocado Egg Toast", MealType: model.Breakfast,
			Description: "Whole wheat toast with smashed avocado and two fried eggs.",
			ImageRef:    "recipes/avocado-egg-toast.jpg",
			Ingredients: lines("whole-wheat-bread", 70, "avocado", 50, "eggs", 100),
			Tags:        model.DietaryTags{Vegetarian: true, DairyFree: true},
			Simple:      true},
		{ID: "tofu-scramble", Name: "Tofu Scramble Hash", MealType: model.Breakfast,
			Description: "Crumbled tofu pan-fried with spinach and roasted sweet potato.",
			ImageRef:    "recipes/tofu-scramble.jpg",
			Ingredients: lines("tofu", 200, "spinach", 50, "sweet-potato", 100),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, HighProtein: true},
			EasyToCook:  true},

		// lunch
		{ID: "chicken-quinoa-bowl", Name: "Chicken Quinoa Bowl", MealType: model.Lunch,
			Description: "Grilled chicken over quinoa with steamed broccoli.",
			ImageRef:    "recipes/chicken-quinoa-bowl.jpg",
			Ingredients: lines("chicken-breast", 150, "quinoa", 150, "broccoli", 100),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, HighProtein: true},
			EasyToCook:  true},
		{ID: "shrimp-rice-bowl", Name: "Shrimp Rice Bowl", MealType: model.Lunch,
			Description: "Garlic shrimp with brown rice and sliced avocado.",
			ImageRef:    "recipes/shrimp-rice-bowl.jpg",
			Ingredients: lines("shrimp", 150, "brown-rice", 150, "avocado", 50),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsSeafood: true, HighProtein: true}},
		{ID: "tofu-stir-fry", Name: "Tofu Broccoli Stir-Fry", MealType: model.Lunch,
			Description: "Crispy tofu and broccoli tossed in a wok, served with brown rice.",
			ImageRef:    "recipes/tofu-stir-fry.jpg",
			Ingredients: lines("tofu", 200, "brown-rice", 150, "broccoli", 100),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, HighProtein: true}},
		{ID: "chicken-avocado-sandwich", Name: "Chicken Avocado Sandwich", MealType: model.Lunch,
			Description: "Sliced chicken breast, avocado and spinach on whole wheat bread.",
			ImageRef:    "recipes/chicken-avocado-sandwich.jpg",
			Ingredients: lines("chicken-breast", 120, "whole-wheat-bread", 80, "avocado", 40, "spinach", 30),
			Tags:        model.DietaryTags{DairyFree: true, HighProtein: true},
			Simple:      true, EasyToCook: true},
		{ID: "pork-sweet-potato-plate", Name: "Pork & Sweet Potato Plate", MealType: model.Lunch,
			Description: "Seared pork tenderloin with mashed sweet potato and spinach.",
			ImageRef:    "recipes/pork-sweet-potato-plate.jpg",
			Ingredients: lines("pork-tenderloin", 150, "sweet-potato", 200, "spinach", 50),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsPork: true, HighProtein: true}},

		// dinner
		{ID: "baked-salmon-sweet-potato", Name: "Baked Salmon with Sweet Potato", MealType: model.Dinner,
			Description: "Oven-baked salmon with roasted sweet potato wedges and broccoli.",
			ImageRef:    "recipes/baked-salmon-sweet-potato.jpg",
			Ingredients: lines("salmon", 150, "sweet-potato", 200, "broccoli", 100),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsSeafood: true, HighProtein: true},
			EasyToCook:  true},
		{ID: "chicken-broccoli-rice", Name: "Chicken, Broccoli & Rice", MealType: model.Dinner,
			Description: "The classic: chicken breast, broccoli and brown rice.",
			ImageRef:    "recipes/chicken-broccoli-rice.jpg",
			Ingredients: lines("chicken-breast", 170, "brown-rice", 150, "broccoli", 120),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, HighProtein: true},
			Simple:      true, EasyToCook: true},
		{ID: "quinoa-veggie-bowl", Name: "Quinoa Veggie Bowl", MealType: model.Dinner,
			Description: "Warm quinoa with spinach, avocado and toasted almonds.",
			ImageRef:    "recipes/quinoa-veggie-bowl.jpg",
			Ingredients: lines("quinoa", 200, "spinach", 60, "avocado", 50, "almonds", 20),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, ContainsNuts: true},
			Simple:      true},
		{ID: "pork-tenderloin-quinoa", Name: "Pork Tenderloin with Quinoa", MealType: model.Dinner,
			Description: "Herb-crusted pork tenderloin over quinoa and sautéed spinach.",
			ImageRef:    "recipes/pork-tenderloin-quinoa.jpg",
			Ingredients: lines("pork-tenderloin", 160, "quinoa", 150, "spinach", 60),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsPork: true, HighProtein: true}},
		{ID: "shrimp-quinoa-skillet", Name: "Shrimp Quinoa Skillet", MealType: model.Dinner,
			Description: "One-pan shrimp with quinoa and charred broccoli.",
			ImageRef:    "recipes/shrimp-quinoa-skillet.jpg",
			Ingredients: lines("shrimp", 170, "quinoa", 150, "broccoli", 80),
			Tags:        model.DietaryTags{DairyFree: true, GlutenFree: true, ContainsSeafood: true, HighProtein: true},
			EasyToCook:  true},

		// snack
		{ID: "almonds-banana", Name: "Almonds & Banana", MealType: model.Snack,
			Description: "A banana with a handful of almonds.",
			ImageRef:    "recipes/almonds-banana.jpg",
			Ingredients: lines("almonds", 20, "banana", 100),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true, GlutenFree: true, ContainsNuts: true},
			Simple:      true, EasyToCook: true},
		{ID: "greek-yogurt-cup", Name: "Greek Yogurt Cup", MealType: model.Snack,
			Description: "Plain nonfat greek yogurt.",
			ImageRef:    "recipes/greek-yogurt-cup.jpg",
			Ingredients: lines("greek-yogurt", 170),
			Tags:        model.DietaryTags{Vegetarian: true, GlutenFree: true, HighProtein: true},
			Simple:      true, EasyToCook: true},
		{ID: "boiled-eggs", Name: "Hard-Boiled Eggs", MealType: model.Snack,
			Description: "Two hard-boiled eggs with a pinch of salt.",
			ImageRef:    "recipes/boiled-eggs.jpg",
			Ingredients: lines("eggs", 100),
			Tags:        model.DietaryTags{Vegetarian: true, DairyFree: true, GlutenFree: true, HighProtein: true},
			Simple:      true, EasyToCook: true},
		{ID: "avocado-toast-bite", Name: "Avocado Toast Bite", MealType: model.Snack,
			Description: "Half a slice of whole wheat toast with avocado.",
			ImageRef:    "recipes/avocado-toast-bite.jpg",
			Ingredients: lines("whole-wheat-bread", 40, "avocado", 50),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true},
			Simple:      true, EasyToCook: true},
		{ID: "banana-oat-bites", Name: "Banana Oat Bites", MealType: model.Snack,
			Description: "Baked bites of mashed banana and oats.",
			ImageRef:    "recipes/banana-oat-bites.jpg",
			Ingredients: lines("oats", 40, "banana", 60),
			Tags:        model.DietaryTags{Vegan: true, Vegetarian: true, DairyFree: true},
			EasyToCook:  true},
	}
}
