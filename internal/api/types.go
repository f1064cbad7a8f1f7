package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/pageza/macroplan/backend/internal/service"
)

const (
	DefaultPlanDays        = 7
	MaxPlanDays            = 31
	DefaultWorkoutsPerWeek = 4
)

// GeneratePlanRequest is the payload of the plan generation webhook.
// Optional numbers are pointers so absent values can be told apart from
// zeros.
type GeneratePlanRequest struct {
	ProfileID           string   `json:"profile_id" binding:"required"`
	Days                *int     `json:"days" binding:"omitempty,min=1,max=31"`
	CaloriesTarget      *float64 `json:"calories_target" binding:"required,gt=0"`
	ProteinTargetG      *float64 `json:"protein_target_g" binding:"required,gt=0"`
	FatTargetG          *float64 `json:"fat_target_g" binding:"required,gt=0"`
	CarbTargetG         *float64 `json:"carb_target_g" binding:"required,gt=0"`
	WorkoutsPerWeek     *int     `json:"workouts_per_week"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	FoodPreferences     []string `json:"food_preferences"`
}

// FieldError is one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a request
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate runs the binding rules, applies defaults and checks the
// restriction and preference vocabularies. On failure the error is a
// *ValidationError.
func (r *GeneratePlanRequest) Validate() (service.GeneratePlanParams, error) {
	if err := binding.Validator.ValidateStruct(r); err != nil {
		return service.GeneratePlanParams{}, bindingError(err)
	}

	verr := &ValidationError{}

	profileID := strings.TrimSpace(r.ProfileID)
	if profileID == "" {
		verr.add("profile_id", "is required")
	}

	days := DefaultPlanDays
	if r.Days != nil {
		days = *r.Days
	}

	workouts := DefaultWorkoutsPerWeek
	if r.WorkoutsPerWeek != nil && *r.WorkoutsPerWeek >= 1 && *r.WorkoutsPerWeek <= 7 {
		workouts = *r.WorkoutsPerWeek
	}

	for _, s := range r.DietaryRestrictions {
		if !catalog.IsRestriction(s) {
			verr.add("dietary_restrictions", "unknown restriction %q", s)
		}
	}
	for _, s := range r.FoodPreferences {
		if !catalog.IsPreference(s) {
			verr.add("food_preferences", "unknown preference %q", s)
		}
	}

	if len(verr.Fields) > 0 {
		return service.GeneratePlanParams{}, verr
	}

	return service.GeneratePlanParams{
		ProfileID:           profileID,
		Days:                days,
		CaloriesTarget:      *r.CaloriesTarget,
		ProteinTargetG:      *r.ProteinTargetG,
		FatTargetG:          *r.FatTargetG,
		CarbTargetG:         *r.CarbTargetG,
		WorkoutsPerWeek:     workouts,
		DietaryRestrictions: r.DietaryRestrictions,
		FoodPreferences:     r.FoodPreferences,
	}, nil
}

// RecipeResponse is a catalog recipe with its unscaled macros
type RecipeResponse struct {
	model.Recipe
	ImageURL string              `json:"image_url,omitempty"`
	Macros   catalog.MacroResult `json:"macros"`
}

// PlanSummary is the list view of a stored plan
type PlanSummary struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	CaloriesTarget  float64 `json:"calories_target"`
	ProteinTargetG  float64 `json:"protein_target_g"`
	WorkoutsPerWeek int     `json:"workouts_per_week"`
	Days            int     `json:"days"`
	// Daily averages of what the generated meals actually provide
	AvgCalories     float64 `json:"avg_daily_calories"`
	AvgProteinG     float64 `json:"avg_daily_protein_g"`
}

func summarize(p *model.MealPlan) PlanSummary {
	var total model.Macros
	for _, d := range p.Days {
		t := d.Totals()
		total.Calories += t.Calories
		total.Protein += t.Protein
	}
	var avgCal, avgProt float64
	if n := float64(len(p.Days)); n > 0 {
		avgCal = model.Round1(total.Calories / n)
		avgProt = model.Round1(total.Protein / n)
	}

	return PlanSummary{
		ID:              p.ID.String(),
		Title:           p.Title,
		StartDate:       p.StartDate.Format("2006-01-02"),
		EndDate:         p.EndDate.Format("2006-01-02"),
		CaloriesTarget:  p.CaloriesTarget,
		ProteinTargetG:  p.ProteinTargetG,
		WorkoutsPerWeek: p.WorkoutsPerWeek,
		Days:            len(p.Days),
		AvgCalories:     avgCal,
		AvgProteinG:     avgProt,
	}
}
