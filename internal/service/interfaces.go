package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/pageza/macroplan/backend/internal/types"
)

// IPlanService defines the interface for meal plan operations
type IPlanService interface {
	Generate(ctx context.Context, params GeneratePlanParams, idempotencyKey string) (*model.MealPlan, bool, error)
	Replay(ctx context.Context, profileID, idempotencyKey string) (*model.MealPlan, bool)
	GetPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error)
	ListPlans(ctx context.Context, profileID string) ([]*model.MealPlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	SwapMeal(ctx context.Context, id uuid.UUID, dayNumber, mealOrder int) (*model.MealPlan, error)
}

// ITokenService defines the interface for bearer token operations
type ITokenService interface {
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IdempotencyStore remembers which plan a webhook idempotency key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, profileID, key string) (uuid.UUID, bool, error)
	Remember(ctx context.Context, profileID, key string, planID uuid.UUID) error
}

// ImageResolver turns a recipe image reference into a URL clients can fetch.
type ImageResolver interface {
	ResolveImageURL(ctx context.Context, ref string) (string, error)
}

// PlanArchiver keeps a copy of every generated plan outside the database.
type PlanArchiver interface {
	ArchivePlan(ctx context.Context, plan *model.MealPlan) error
}

// ObjectStore is the subset of object storage operations plan storage needs.
type ObjectStore interface {
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
	PutJSON(ctx context.Context, objectKey string, v interface{}) error
}
