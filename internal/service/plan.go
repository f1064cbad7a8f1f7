package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/model"
	"gorm.io/gorm"
)

// IdempotencyWindow is how long a webhook idempotency key keeps replaying
// the plan it produced.
const IdempotencyWindow = 24 * time.Hour

var (
	ErrPlanNotFound  = errors.New("meal plan not found")
	ErrMealNotFound  = errors.New("meal not found in plan")
	ErrNoAlternative = errors.New("no alternative recipe available")
)

// PlanService generates, stores and serves meal plans.
type PlanService struct {
	db          *gorm.DB
	generator   *PlanGenerator
	idempotency IdempotencyStore
	images      ImageResolver
	archiver    PlanArchiver
}

// NewPlanService creates a PlanService. The idempotency store, image
// resolver and archiver are optional and may be nil.
func NewPlanService(db *gorm.DB, generator *PlanGenerator, idempotency IdempotencyStore, images ImageResolver, archiver PlanArchiver) *PlanService {
	return &PlanService{
		db:          db,
		generator:   generator,
		idempotency: idempotency,
		images:      images,
		archiver:    archiver,
	}
}

// Generate builds and stores a new plan. When idempotencyKey was already
// used by the same profile within IdempotencyWindow, the stored plan is
// returned instead and the second return value is true.
func (s *PlanService) Generate(ctx context.Context, params GeneratePlanParams, idempotencyKey string) (*model.MealPlan, bool, error) {
	if idempotencyKey != "" {
		if plan := s.replay(ctx, params.ProfileID, idempotencyKey); plan != nil {
			s.resolveImages(ctx, plan)
			return plan, true, nil
		}
	}

	data := s.generator.GeneratePlan(params)
	plan := model.NewMealPlan(data)
	plan.Restrictions = model.StringList(params.DietaryRestrictions)
	plan.Preferences = model.StringList(params.FoodPreferences)
	plan.IdempotencyKey = idempotencyKey

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, false, fmt.Errorf("failed to save meal plan: %w", err)
	}
	log.Printf("Generated %d-day meal plan %s for profile %s", len(plan.Days), plan.ID, plan.ProfileID)

	if idempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Remember(ctx, plan.ProfileID, idempotencyKey, plan.ID); err != nil {
			log.Printf("Warning: failed to store idempotency key for plan %s: %v", plan.ID, err)
		}
	}

	if s.archiver != nil {
		if err := s.archiver.ArchivePlan(ctx, plan); err != nil {
			log.Printf("Warning: failed to archive meal plan %s: %v", plan.ID, err)
		}
	}

	s.resolveImages(ctx, plan)
	return plan, false, nil
}

// Replay returns the plan a previous Generate call stored for key, without
// generating anything.
func (s *PlanService) Replay(ctx context.Context, profileID, key string) (*model.MealPlan, bool) {
	if key == "" {
		return nil, false
	}
	plan := s.replay(ctx, profileID, key)
	if plan == nil {
		return nil, false
	}
	s.resolveImages(ctx, plan)
	return plan, true
}

// replay returns the plan previously produced for key, checking the
// idempotency store first and the plan table second.
func (s *PlanService) replay(ctx context.Context, profileID, key string) *model.MealPlan {
	if s.idempotency != nil {
		id, ok, err := s.idempotency.Lookup(ctx, profileID, key)
		if err != nil {
			log.Printf("Warning: idempotency lookup failed for profile %s: %v", profileID, err)
		} else if ok {
			plan, err := s.load(ctx, id)
			if err == nil && plan.ProfileID == profileID {
				return plan
			}
		}
	}

	var plan model.MealPlan
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND idempotency_key = ? AND created_at > ?", profileID, key, time.Now().Add(-IdempotencyWindow)).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		return nil
	}
	return &plan
}

// GetPlan retrieves a plan by ID
func (s *PlanService) GetPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	plan, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveImages(ctx, plan)
	return plan, nil
}

// ListPlans returns the plans of a profile, newest first
func (s *PlanService) ListPlans(ctx context.Context, profileID string) ([]*model.MealPlan, error) {
	var plans []model.MealPlan
	if err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	result := make([]*model.MealPlan, len(plans))
	for i := range plans {
		s.resolveImages(ctx, &plans[i])
		result[i] = &plans[i]
	}
	return result, nil
}

// DeletePlan soft-deletes a plan
func (s *PlanService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&model.MealPlan{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete meal plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// SwapMeal replaces one meal of a stored plan with the best other recipe
// for the same slot.
func (s *PlanService) SwapMeal(ctx context.Context, id uuid.UUID, dayNumber, mealOrder int) (*model.MealPlan, error) {
	plan, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	day, meal := plan.FindMeal(dayNumber, mealOrder)
	if meal == nil {
		return nil, ErrMealNotFound
	}

	// keep the two snacks of a day different when the catalog allows it
	var siblings []string
	for _, m := range day.Meals {
		if m.MealOrder != mealOrder && m.MealType == meal.MealType {
			siblings = append(siblings, m.RecipeID)
		}
	}

	alt, ok := s.generator.AlternativeMeal(paramsFromPlan(plan), mealOrder, meal.RecipeID, siblings...)
	if !ok {
		return nil, ErrNoAlternative
	}
	previous := meal.RecipeID
	*meal = alt

	if err := s.db.WithContext(ctx).Model(plan).Update("days", plan.Days).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}
	log.Printf("Swapped %s for %s in plan %s (day %d, meal %d)", previous, alt.RecipeID, plan.ID, dayNumber, mealOrder)

	s.resolveImages(ctx, plan)
	return plan, nil
}

func (s *PlanService) load(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	var plan model.MealPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}
	return &plan, nil
}

// resolveImages fills ImageURL on every meal. URLs are not persisted since
// presigned links expire.
func (s *PlanService) resolveImages(ctx context.Context, plan *model.MealPlan) {
	if s.images == nil {
		return
	}
	urls := make(map[string]string)
	for i := range plan.Days {
		for j := range plan.Days[i].Meals {
			meal := &plan.Days[i].Meals[j]
			if meal.ImageRef == "" {
				continue
			}
			url, ok := urls[meal.ImageRef]
			if !ok {
				var err error
				url, err = s.images.ResolveImageURL(ctx, meal.ImageRef)
				if err != nil {
					log.Printf("Warning: failed to resolve image %s: %v", meal.ImageRef, err)
				}
				urls[meal.ImageRef] = url
			}
			meal.ImageURL = url
		}
	}
}

func paramsFromPlan(plan *model.MealPlan) GeneratePlanParams {
	return GeneratePlanParams{
		ProfileID:           plan.ProfileID,
		Days:                len(plan.Days),
		CaloriesTarget:      plan.CaloriesTarget,
		ProteinTargetG:      plan.ProteinTargetG,
		FatTargetG:          plan.FatTargetG,
		CarbTargetG:         plan.CarbTargetG,
		WorkoutsPerWeek:     plan.WorkoutsPerWeek,
		DietaryRestrictions: []string(plan.Restrictions),
		FoodPreferences:     []string(plan.Preferences),
	}
}
