package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/model"
	"github.com/pageza/macroplan/backend/internal/service"
	"github.com/pageza/macroplan/backend/internal/testhelpers"
	"github.com/pageza/macroplan/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingIdempotencyStore struct{}

func (failingIdempotencyStore) Lookup(ctx context.Context, profileID, key string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, errors.New("redis down")
}

func (failingIdempotencyStore) Remember(ctx context.Context, profileID, key string, planID uuid.UUID) error {
	return errors.New("redis down")
}

func setupPlanService(t *testing.T, store service.IdempotencyStore, images service.ImageResolver, archiver service.PlanArchiver) (*service.PlanService, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	gen := service.NewPlanGenerator(catalog.MustDefault(), service.WithClock(fixedClock))
	return service.NewPlanService(db, gen, store, images, archiver), db
}

func TestPlanServiceGenerate(t *testing.T) {
	svc, db := setupPlanService(t, nil, nil, nil)
	ctx := context.Background()

	params := defaultParams()
	params.Days = 3
	params.DietaryRestrictions = []string{catalog.RestrictionNoPork}

	plan, replayed, err := svc.Generate(ctx, params, "")
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.NotEqual(t, uuid.Nil, plan.ID)
	assert.Len(t, plan.Days, 3)
	assert.Equal(t, model.StringList{catalog.RestrictionNoPork}, plan.Restrictions)

	var count int64
	require.NoError(t, db.Model(&model.MealPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := svc.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.Title, loaded.Title)
	assert.Equal(t, plan.Days[2].Meals[4].RecipeID, loaded.Days[2].Meals[4].RecipeID)
	assert.True(t, plan.StartDate.Equal(loaded.StartDate))
}

func TestPlanServiceIdempotentReplay(t *testing.T) {
	client, _ := testhelpers.SetupTestRedis(t)
	store := service.NewRedisIdempotencyStore(client, time.Hour)
	svc, db := setupPlanService(t, store, nil, nil)
	ctx := context.Background()

	first, replayed, err := svc.Generate(ctx, defaultParams(), "key-1")
	require.NoError(t, err)
	assert.False(t, replayed)

	second, replayed, err := svc.Generate(ctx, defaultParams(), "key-1")
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, second.ID)

	// same key, other profile
	other := defaultParams()
	other.ProfileID = "profile-2"
	third, replayed, err := svc.Generate(ctx, other, "key-1")
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.NotEqual(t, first.ID, third.ID)

	var count int64
	require.NoError(t, db.Model(&model.MealPlan{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestPlanServiceReplayWithoutRedis(t *testing.T) {
	svc, _ := setupPlanService(t, failingIdempotencyStore{}, nil, nil)
	ctx := context.Background()

	first, _, err := svc.Generate(ctx, defaultParams(), "key-1")
	require.NoError(t, err)

	second, replayed, err := svc.Generate(ctx, defaultParams(), "key-1")
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, second.ID)
}

func TestPlanServiceListAndDelete(t *testing.T) {
	svc, _ := setupPlanService(t, nil, nil, nil)
	ctx := context.Background()

	a, _, err := svc.Generate(ctx, defaultParams(), "")
	require.NoError(t, err)
	_, _, err = svc.Generate(ctx, defaultParams(), "")
	require.NoError(t, err)
	other := defaultParams()
	other.ProfileID = "profile-2"
	_, _, err = svc.Generate(ctx, other, "")
	require.NoError(t, err)

	plans, err := svc.ListPlans(ctx, "profile-1")
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	require.NoError(t, svc.DeletePlan(ctx, a.ID))
	_, err = svc.GetPlan(ctx, a.ID)
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
	assert.ErrorIs(t, svc.DeletePlan(ctx, a.ID), service.ErrPlanNotFound)

	plans, err = svc.ListPlans(ctx, "profile-1")
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestPlanServiceSwapMeal(t *testing.T) {
	svc, _ := setupPlanService(t, nil, nil, nil)
	ctx := context.Background()

	plan, _, err := svc.Generate(ctx, defaultParams(), "")
	require.NoError(t, err)
	before := plan.Days[0].Meals[4]

	swapped, err := svc.SwapMeal(ctx, plan.ID, 1, 5)
	require.NoError(t, err)
	after := swapped.Days[0].Meals[4]
	assert.NotEqual(t, before.RecipeID, after.RecipeID)
	assert.Equal(t, model.Dinner, after.MealType)
	assert.Equal(t, 5, after.MealOrder)

	loaded, err := svc.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, after.RecipeID, loaded.Days[0].Meals[4].RecipeID)
	// untouched meals stay put
	assert.Equal(t, plan.Days[0].Meals[0].RecipeID, loaded.Days[0].Meals[0].RecipeID)

	_, err = svc.SwapMeal(ctx, plan.ID, 2, 1)
	assert.ErrorIs(t, err, service.ErrMealNotFound)
	_, err = svc.SwapMeal(ctx, uuid.New(), 1, 1)
	assert.ErrorIs(t, err, service.ErrPlanNotFound)
}

func TestPlanServiceSwapSnackKeepsSnacksDistinct(t *testing.T) {
	svc, _ := setupPlanService(t, nil, nil, nil)
	ctx := context.Background()

	plan, _, err := svc.Generate(ctx, defaultParams(), "")
	require.NoError(t, err)

	for _, order := range []int{4, 2, 4} {
		plan, err = svc.SwapMeal(ctx, plan.ID, 1, order)
		require.NoError(t, err)

		_, morning := plan.FindMeal(1, 2)
		_, afternoon := plan.FindMeal(1, 4)
		require.NotNil(t, morning)
		require.NotNil(t, afternoon)
		assert.NotEqual(t, morning.RecipeID, afternoon.RecipeID, "after swapping meal %d", order)
	}
}

func TestPlanServiceReplay(t *testing.T) {
	svc, _ := setupPlanService(t, nil, nil, nil)
	ctx := context.Background()

	_, ok := svc.Replay(ctx, "profile-1", "key-1")
	assert.False(t, ok)

	plan, _, err := svc.Generate(ctx, defaultParams(), "key-1")
	require.NoError(t, err)

	replayed, ok := svc.Replay(ctx, plan.ProfileID, "key-1")
	require.True(t, ok)
	assert.Equal(t, plan.ID, replayed.ID)

	_, ok = svc.Replay(ctx, plan.ProfileID, "")
	assert.False(t, ok)
	_, ok = svc.Replay(ctx, "someone-else", "key-1")
	assert.False(t, ok)
}

func TestPlanServiceSwapMealNoAlternative(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	reg := fixtureRegistry(t, recipeOf("only-lunch", model.Lunch, 300))
	svc := service.NewPlanService(db, service.NewPlanGenerator(reg, service.WithClock(fixedClock)), nil, nil, nil)
	ctx := context.Background()

	plan, _, err := svc.Generate(ctx, defaultParams(), "")
	require.NoError(t, err)
	require.Len(t, plan.Days[0].Meals, 1)

	_, err = svc.SwapMeal(ctx, plan.ID, 1, 3)
	assert.ErrorIs(t, err, service.ErrNoAlternative)
}

func TestPlanServiceStorage(t *testing.T) {
	store := new(testhelpers.MockObjectStore)
	store.On("GeneratePresignedURL", mock.Anything, mock.AnythingOfType("string"), time.Hour).
		Return("https://cdn.example.com/signed", nil)
	store.On("PutJSON", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("plans/profile-1/")
	}), mock.Anything).Return(nil).Once()

	storage := service.NewPlanStorage(store, time.Hour)
	svc, _ := setupPlanService(t, nil, storage, storage)

	plan, _, err := svc.Generate(context.Background(), defaultParams(), "")
	require.NoError(t, err)

	for _, meal := range plan.Days[0].Meals {
		assert.Equal(t, "https://cdn.example.com/signed", meal.ImageURL)
	}
	store.AssertCalled(t, "PutJSON", mock.Anything, service.ArchiveKey(plan), mock.Anything)
	store.AssertExpectations(t)
}

func TestPlanServiceArchiveFailureIsNotFatal(t *testing.T) {
	store := new(testhelpers.MockObjectStore)
	store.On("PutJSON", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("s3 unavailable"))
	storage := service.NewPlanStorage(store, 0)
	svc, _ := setupPlanService(t, nil, nil, storage)

	plan, _, err := svc.Generate(context.Background(), defaultParams(), "")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, plan.ID)
}

func TestRedisIdempotencyStore(t *testing.T) {
	client, mr := testhelpers.SetupTestRedis(t)
	store := service.NewRedisIdempotencyStore(client, time.Minute)
	ctx := context.Background()
	id := uuid.New()

	_, ok, err := store.Lookup(ctx, "p1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remember(ctx, "p1", "k", id))
	got, ok, err := store.Lookup(ctx, "p1", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Lookup(ctx, "p1", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenService(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)

	token, err := tokens.GenerateToken(&types.TokenClaims{UserID: uuid.New(), ProfileID: "profile-1"})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", claims.ProfileID)
	assert.Equal(t, "macroplan", claims.Issuer)

	_, err = service.NewTokenService("other-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)

	_, err = tokens.GenerateToken(&types.TokenClaims{})
	assert.ErrorIs(t, err, service.ErrMissingProfileID)
}
