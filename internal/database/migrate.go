package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"github.com/pageza/macroplan/backend/internal/model"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

var ErrNoMigrations = errors.New("no migrations to roll back")

const rollbackSuffix = "_rollback.sql"

// Migration is one versioned SQL file with its optional rollback script.
type Migration struct {
	Version  string
	Name     string
	Up       string
	Rollback string
}

// Migrations returns the embedded migrations sorted by file name.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") && !strings.HasSuffix(e.Name(), rollbackSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		up, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		m := Migration{
			Version: strings.SplitN(name, "_", 2)[0],
			Name:    name,
			Up:      string(up),
		}
		if down, err := migrationFS.ReadFile("migrations/" + strings.TrimSuffix(name, ".sql") + rollbackSuffix); err == nil {
			m.Rollback = string(down)
		}
		out = append(out, m)
	}
	return out, nil
}

// RunMigrations brings the schema up to date. SQLite databases are migrated
// from the gorm models, Postgres from the embedded SQL files.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		log.Printf("Using GORM auto-migration for SQLite")
		return db.AutoMigrate(&model.MealPlan{})
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	_, err = ApplyMigrations(sqlDB)
	return err
}

func ensureMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// ApplyMigrations runs every embedded migration not yet recorded in
// schema_migrations, each in its own transaction. It returns the names of
// the migrations it applied.
func ApplyMigrations(db *sql.DB) ([]string, error) {
	if err := ensureMigrationsTable(db); err != nil {
		return nil, err
	}

	migrations, err := Migrations()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range migrations {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = $1", m.Version).Scan(&count); err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			log.Printf("Skipping migration %s (already applied)", m.Name)
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return applied, fmt.Errorf("failed to start transaction: %w", err)
		}
		if _, err := tx.Exec(m.Up); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("failed to execute migration %s: %w", m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("failed to record migration %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %s: %w", m.Name, err)
		}

		log.Printf("Applied migration %s", m.Name)
		applied = append(applied, m.Name)
	}

	return applied, nil
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *sql.DB) (string, error) {
	if err := ensureMigrationsTable(db); err != nil {
		return "", err
	}

	var version, name string
	err := db.QueryRow("SELECT version, name FROM schema_migrations ORDER BY version DESC LIMIT 1").Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoMigrations
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	migrations, err := Migrations()
	if err != nil {
		return "", err
	}
	var script string
	for _, m := range migrations {
		if m.Version == version {
			script = m.Rollback
		}
	}
	if script == "" {
		return "", fmt.Errorf("no rollback script for migration %s", name)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	if _, err := tx.Exec(script); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to execute rollback of %s: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to remove migration record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit rollback: %w", err)
	}

	log.Printf("Rolled back migration %s", name)
	return name, nil
}
