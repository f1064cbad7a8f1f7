package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/pageza/macroplan/backend/config"
	"github.com/pageza/macroplan/backend/internal/api"
	"github.com/pageza/macroplan/backend/internal/catalog"
	"github.com/pageza/macroplan/backend/internal/database"
	"github.com/pageza/macroplan/backend/internal/middleware"
	"github.com/pageza/macroplan/backend/internal/server"
	"github.com/pageza/macroplan/backend/internal/service"
)

// tokenTTL is how long issued bearer tokens stay valid
const tokenTTL = 24 * time.Hour

func main() {
	// A missing .env file is fine outside local development
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	registry := catalog.MustDefault()
	log.Printf("Loaded recipe catalog: %d recipes, %d ingredients",
		len(registry.Recipes()), registry.IngredientCount())

	deps := api.Dependencies{
		Tokens:            service.NewTokenService(cfg.JWTSecret, tokenTTL),
		Registry:          registry,
		WebhookSecretHash: cfg.WebhookSecretHash,
	}

	// Redis backs idempotency and rate limiting; both degrade without it
	var idempotency service.IdempotencyStore
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, idempotency falls back to the database and rate limiting is off: %v", err)
	} else {
		defer redisClient.Close()
		idempotency = service.NewRedisIdempotencyStore(redisClient, service.IdempotencyWindow)
		deps.PlanLimiter = middleware.NewPlanGenerationRateLimiter(redisClient, cfg.PlanRateLimitPerHour)
		deps.SwapLimiter = middleware.NewMealSwapRateLimiter(redisClient)
	}

	var images service.ImageResolver
	var archiver service.PlanArchiver
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	switch {
	case err == nil:
		storage := service.NewPlanStorage(s3Config, time.Hour)
		images, archiver = storage, storage
		deps.Images = storage
	case errors.Is(err, config.ErrNoBucket):
		log.Printf("S3 bucket not configured, image links and plan archiving are disabled")
	default:
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	generator := service.NewPlanGenerator(registry)
	deps.Plans = service.NewPlanService(db, generator, idempotency, images, archiver)

	srv := server.New(cfg, db, deps)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
