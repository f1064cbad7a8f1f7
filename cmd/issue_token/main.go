// Command issue_token prints a bearer token for a profile, or a bcrypt hash
// suitable for WEBHOOK_SECRET_HASH.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/macroplan/backend/config"
	"github.com/pageza/macroplan/backend/internal/service"
	"github.com/pageza/macroplan/backend/internal/types"
)

func main() {
	profileID := flag.String("profile", "", "profile id the token is issued for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	hashSecret := flag.String("hash-secret", "", "print the bcrypt hash of this webhook secret and exit")
	flag.Parse()

	if *hashSecret != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashSecret), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash secret: %v", err)
		}
		fmt.Println(string(hash))
		return
	}

	if *profileID == "" {
		log.Fatal("-profile is required")
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, *ttl)
	token, err := tokens.GenerateToken(&types.TokenClaims{
		UserID:    uuid.New(),
		ProfileID: *profileID,
	})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
