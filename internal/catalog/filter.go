package catalog

import "github.com/pageza/macroplan/backend/internal/model"

// Dietary restriction vocabulary.
const (
	RestrictionNoPork     = "no-pork"
	RestrictionNoSeafood  = "no-seafood"
	RestrictionVegan      = "vegan"
	RestrictionVegetarian = "vegetarian"
	RestrictionDairyFree  = "dairy-free"
	RestrictionGlutenFree = "gluten-free"
	RestrictionNoNuts     = "no-nuts"
)

// Food preference vocabulary.
const (
	PreferenceHighProtein = "high-protein"
	PreferenceSimple      = "simple"
	PreferenceEasyToCook  = "easy-to-cook"
)

var restrictionRules = map[string]func(model.Recipe) bool{
	RestrictionNoPork:     func(r model.Recipe) bool { return !r.Tags.ContainsPork },
	RestrictionNoSeafood:  func(r model.Recipe) bool { return !r.Tags.ContainsSeafood },
	RestrictionVegan:      func(r model.Recipe) bool { return r.Tags.Vegan },
	RestrictionVegetarian: func(r model.Recipe) bool { return r.Tags.Vegan || r.Tags.Vegetarian },
	RestrictionDairyFree:  func(r model.Recipe) bool { return r.Tags.DairyFree },
	RestrictionGlutenFree: func(r model.Recipe) bool { return r.Tags.GlutenFree },
	RestrictionNoNuts:     func(r model.Recipe) bool { return !r.Tags.ContainsNuts },
}

var preferenceRules = map[string]func(model.Recipe) bool{
	PreferenceHighProtein: func(r model.Recipe) bool { return r.Tags.HighProtein },
	PreferenceSimple:      func(r model.Recipe) bool { return r.Simple },
	PreferenceEasyToCook:  func(r model.Recipe) bool { return r.EasyToCook },
}

// IsRestriction reports whether s belongs to the restriction vocabulary.
func IsRestriction(s string) bool {
	_, ok := restrictionRules[s]
	return ok
}

// IsPreference reports whether s belongs to the preference vocabulary.
func IsPreference(s string) bool {
	_, ok := preferenceRules[s]
	return ok
}

// FilterByRestrictions keeps the recipes compatible with every known
// restriction. Unknown restriction strings are ignored.
func FilterByRestrictions(recipes []model.Recipe, restrictions []string) []model.Recipe {
	return filter(recipes, restrictions, restrictionRules)
}

// FilterByPreferences keeps the recipes matching every requested preference.
// An empty preference list returns recipes unchanged.
func FilterByPreferences(recipes []model.Recipe, preferences []string) []model.Recipe {
	if len(preferences) == 0 {
		return recipes
	}
	return filter(recipes, preferences, preferenceRules)
}

// FilterByMealType keeps the recipes of the given meal type.
func FilterByMealType(recipes []model.Recipe, t model.MealType) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.MealType == t {
			out = append(out, r)
		}
	}
	return out
}

func filter(recipes []model.Recipe, tags []string, rules map[string]func(model.Recipe) bool) []model.Recipe {
	var active []func(model.Recipe) bool
	for _, t := range tags {
		if rule, ok := rules[t]; ok {
			active = append(active, rule)
		}
	}

	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		keep := true
		for _, rule := range active {
			if !rule(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}
