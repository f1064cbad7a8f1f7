package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/pageza/macroplan/backend/config"
	"github.com/pageza/macroplan/backend/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("DATABASE_URL is not set and configuration failed to load: %v", err)
		}
		dsn = cfg.PostgresDSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if *rollback {
		name, err := database.RollbackLast(db)
		if err != nil {
			log.Fatalf("failed to roll back: %v", err)
		}
		log.Printf("Successfully rolled back migration: %s", name)
		return
	}

	applied, err := database.ApplyMigrations(db)
	if err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	if len(applied) == 0 {
		log.Println("Database is up to date")
		return
	}
	for _, name := range applied {
		log.Printf("Applied migration: %s", name)
	}
}
