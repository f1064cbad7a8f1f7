package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pageza/macroplan/backend/internal/model"
)

// PlanStorage resolves recipe images and archives plans through an object
// store. It implements both ImageResolver and PlanArchiver.
type PlanStorage struct {
	store      ObjectStore
	linkExpiry time.Duration
}

func NewPlanStorage(store ObjectStore, linkExpiry time.Duration) *PlanStorage {
	if linkExpiry <= 0 {
		linkExpiry = time.Hour
	}
	return &PlanStorage{
		store:      store,
		linkExpiry: linkExpiry,
	}
}

// ResolveImageURL presigns a GET link for the image object.
func (s *PlanStorage) ResolveImageURL(ctx context.Context, ref string) (string, error) {
	return s.store.GeneratePresignedURL(ctx, ref, s.linkExpiry)
}

// ArchivePlan writes the plan as JSON under plans/{profile}/{id}.json.
func (s *PlanStorage) ArchivePlan(ctx context.Context, plan *model.MealPlan) error {
	return s.store.PutJSON(ctx, ArchiveKey(plan), plan)
}

// ArchiveKey is the object key a plan is archived under.
func ArchiveKey(plan *model.MealPlan) string {
	return fmt.Sprintf("plans/%s/%s.json", plan.ProfileID, plan.ID)
}
