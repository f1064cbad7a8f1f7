package service

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/model"
)

const (
	// PlanSource tags plans produced by PlanGenerator.
	PlanSource = "plan-generator"

	// selectionTolerance is the relative error on calories and protein under
	// which a recipe is accepted without searching for the closest match.
	selectionTolerance = 0.5

	morningSnackOrder   = 2
	afternoonSnackOrder = 4
)

// GeneratePlanParams are the validated inputs of a plan generation.
type GeneratePlanParams struct {
	ProfileID           string
	Days                int
	CaloriesTarget      float64
	ProteinTargetG      float64
	FatTargetG          float64
	CarbTargetG         float64
	WorkoutsPerWeek     int
	DietaryRestrictions []string
	FoodPreferences     []string
}

// Daily returns the daily macro targets.
func (p GeneratePlanParams) Daily() model.Macros {
	return model.Macros{
		Calories: p.CaloriesTarget,
		Protein:  p.ProteinTargetG,
		Fat:      p.FatTargetG,
		Carbs:    p.CarbTargetG,
	}
}

// Slot is one of the five meal slots of a day.
type Slot struct {
	MealType model.MealType
	Order    int
	Share    float64
}

// DailySlots lists the meal slots of a day in order. Breakfast takes 25% of
// the day, lunch and dinner 30% each, and the 15% snack share is split
// between a morning and an afternoon snack.
var DailySlots = []Slot{
	{MealType: model.Breakfast, Order: 1, Share: 0.25},
	{MealType: model.Snack, Order: morningSnackOrder, Share: 0.075},
	{MealType: model.Lunch, Order: 3, Share: 0.30},
	{MealType: model.Snack, Order: afternoonSnackOrder, Share: 0.075},
	{MealType: model.Dinner, Order: 5, Share: 0.30},
}

// SlotTarget is a slot with its share of the daily macros applied.
type SlotTarget struct {
	Slot
	Target model.Macros
}

// SlotTargets splits daily macro targets across DailySlots.
func SlotTargets(daily model.Macros) []SlotTarget {
	out := make([]SlotTarget, len(DailySlots))
	for i, s := range DailySlots {
		out[i] = SlotTarget{Slot: s, Target: daily.Scale(s.Share)}
	}
	return out
}

// GeneratorOption configures a PlanGenerator.
type GeneratorOption func(*PlanGenerator)

// WithClock overrides the time source used for the plan start date.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *PlanGenerator) {
		g.now = now
	}
}

// PlanGenerator builds meal plans from a catalog registry. It holds no
// mutable state and is safe for concurrent use.
type PlanGenerator struct {
	registry *catalog.Registry
	base     map[string]catalog.MacroResult
	now      func() time.Time
}

// NewPlanGenerator creates a generator over the given registry.
func NewPlanGenerator(registry *catalog.Registry, opts ...GeneratorOption) *PlanGenerator {
	g := &PlanGenerator{
		registry: registry,
		base:     make(map[string]catalog.MacroResult),
		now:      time.Now,
	}
	for _, r := range registry.Recipes() {
		g.base[r.ID] = registry.CalculateMacros(r, nil)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Registry returns the catalog the generator selects from.
func (g *PlanGenerator) Registry() *catalog.Registry {
	return g.registry
}

// GeneratePlan builds a plan. It never fails: filters that leave no recipe
// fall back to the full catalog, and slots without any candidate are left
// out of the day.
func (g *PlanGenerator) GeneratePlan(p GeneratePlanParams) *model.PlanData {
	days := p.Days
	if days < 1 {
		days = 1
	}

	pool := g.candidatePool(p)
	start := midnight(g.now())
	workout := WorkoutWeekdays(start.Weekday(), p.WorkoutsPerWeek)
	targets := SlotTargets(p.Daily())

	plan := &model.PlanData{
		ProfileID:       p.ProfileID,
		Title:           fmt.Sprintf("%d-Day Personalized Meal Plan", days),
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, days-1),
		Source:          PlanSource,
		CaloriesTarget:  p.CaloriesTarget,
		ProteinTargetG:  p.ProteinTargetG,
		FatTargetG:      p.FatTargetG,
		CarbTargetG:     p.CarbTargetG,
		WorkoutsPerWeek: p.WorkoutsPerWeek,
		Days:            make([]model.Day, 0, days),
	}

	for n := 1; n <= days; n++ {
		date := start.AddDate(0, 0, n-1)
		plan.Days = append(plan.Days, model.Day{
			DayNumber:          n,
			Date:               date,
			IsWorkoutDay:       n <= 7 && workout[date.Weekday()],
			WaterTargetGlasses: model.WaterTargetGlasses,
			Meals:              g.planDay(pool, targets),
		})
	}

	return plan
}

// AlternativeMeal selects a replacement for the meal in slot mealOrder,
// excluding the recipe currently in it. Recipes in avoid, such as the one
// already used by the other snack slot, are skipped unless nothing else is
// left. It reports false when the slot is unknown or no other recipe of that
// meal type is available.
func (g *PlanGenerator) AlternativeMeal(p GeneratePlanParams, mealOrder int, excludeRecipeID string, avoid ...string) (model.Meal, bool) {
	for _, t := range SlotTargets(p.Daily()) {
		if t.Order != mealOrder {
			continue
		}
		candidates := excludeRecipe(catalog.FilterByMealType(g.candidatePool(p), t.MealType), excludeRecipeID)
		preferred := candidates
		for _, id := range avoid {
			preferred = excludeRecipe(preferred, id)
		}
		if len(preferred) > 0 {
			candidates = preferred
		}

		recipe, ok := g.selectRecipe(candidates, t.Target)
		if !ok {
			return model.Meal{}, false
		}
		return g.buildMeal(recipe, t), true
	}
	return model.Meal{}, false
}

func (g *PlanGenerator) candidatePool(p GeneratePlanParams) []model.Recipe {
	all := g.registry.Recipes()
	pool := catalog.FilterByPreferences(catalog.FilterByRestrictions(all, p.DietaryRestrictions), p.FoodPreferences)
	if len(pool) == 0 {
		log.Printf("No recipes match restrictions %v and preferences %v for profile %s, using full catalog",
			p.DietaryRestrictions, p.FoodPreferences, p.ProfileID)
		return all
	}
	return pool
}

func (g *PlanGenerator) planDay(pool []model.Recipe, targets []SlotTarget) []model.Meal {
	meals := make([]model.Meal, 0, len(targets))
	var morningSnack string

	for _, t := range targets {
		candidates := catalog.FilterByMealType(pool, t.MealType)
		if t.Order == afternoonSnackOrder && morningSnack != "" && len(candidates) >= 2 {
			candidates = excludeRecipe(candidates, morningSnack)
		}

		recipe, ok := g.selectRecipe(candidates, t.Target)
		if !ok {
			continue
		}
		if t.Order == morningSnackOrder {
			morningSnack = recipe.ID
		}
		meals = append(meals, g.buildMeal(recipe, t))
	}

	return meals
}

// selectRecipe returns the first candidate whose default calories and
// protein are both within selectionTolerance of the target, otherwise the
// candidate with the smallest summed relative error.
func (g *PlanGenerator) selectRecipe(candidates []model.Recipe, target model.Macros) (model.Recipe, bool) {
	if len(candidates) == 0 {
		return model.Recipe{}, false
	}

	best := 0
	bestScore := math.Inf(1)
	for i, r := range candidates {
		base := g.baseMacros(r).Macros()
		calErr := relativeError(base.Calories, target.Calories)
		protErr := relativeError(base.Protein, target.Protein)
		if calErr <= selectionTolerance && protErr <= selectionTolerance {
			return r, true
		}
		if score := calErr + protErr; score < bestScore {
			best, bestScore = i, score
		}
	}
	return candidates[best], true
}

func (g *PlanGenerator) buildMeal(recipe model.Recipe, t SlotTarget) model.Meal {
	factor := ScaleFactor(t.Target, g.baseMacros(recipe))

	overrides := make(map[string]float64, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		overrides[line.IngredientID] = model.Round1(line.Grams * factor)
	}
	macros := g.registry.CalculateMacros(recipe, overrides)

	return model.Meal{
		MealType:    t.MealType,
		MealOrder:   t.Order,
		RecipeID:    recipe.ID,
		RecipeName:  recipe.Name,
		ImageRef:    recipe.ImageRef,
		Description: recipe.Description,
		Calories:    macros.Calories,
		ProteinG:    macros.ProteinG,
		FatG:        macros.FatG,
		CarbG:       macros.CarbG,
		Ingredients: macros.Breakdown,
	}
}

func (g *PlanGenerator) baseMacros(r model.Recipe) catalog.MacroResult {
	if m, ok := g.base[r.ID]; ok {
		return m
	}
	return g.registry.CalculateMacros(r, nil)
}

// ScaleFactor is the mean of the calorie and protein ratios between the
// target and the recipe's default macros. A ratio whose base is zero is left
// out; with neither ratio available the factor is 1.
func ScaleFactor(target model.Macros, base catalog.MacroResult) float64 {
	var sum float64
	var n int
	if base.Calories > 0 {
		sum += target.Calories / base.Calories
		n++
	}
	if base.ProteinG > 0 {
		sum += target.Protein / base.ProteinG
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// WorkoutWeekdays spreads perWeek workouts over the week starting at start,
// stepping floor(7/perWeek) days and wrapping modulo 7.
func WorkoutWeekdays(start time.Weekday, perWeek int) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	if perWeek <= 0 {
		return days
	}
	if perWeek > 7 {
		perWeek = 7
	}
	step := 7 / perWeek
	for i := 0; i < perWeek; i++ {
		days[time.Weekday((int(start)+i*step)%7)] = true
	}
	return days
}

func relativeError(actual, target float64) float64 {
	if target == 0 {
		if actual == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(actual-target) / math.Abs(target)
}

func excludeRecipe(recipes []model.Recipe, id string) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
