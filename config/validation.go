package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// requiredFields lists the values each environment cannot run without.
// Postgres connection fields are checked separately since sqlite needs none.
var requiredFields = map[Environment][]string{
	Development: {"JWT_SECRET", "WEBHOOK_SECRET_HASH"},
	Test:        {"JWT_SECRET", "WEBHOOK_SECRET_HASH"},
	CI:          {"JWT_SECRET", "WEBHOOK_SECRET_HASH"},
	Production:  {"JWT_SECRET", "WEBHOOK_SECRET_HASH", "S3_BUCKET_NAME"},
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "JWT_SECRET":
		return cfg.JWTSecret
	case "WEBHOOK_SECRET_HASH":
		return cfg.WebhookSecretHash
	case "S3_BUCKET_NAME":
		return cfg.S3BucketName
	case "DB_HOST":
		return cfg.DBHost
	case "DB_USER":
		return cfg.DBUser
	case "DB_PASSWORD":
		return cfg.DBPassword
	case "DB_NAME":
		return cfg.DBName
	}
	return ""
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	required := requiredFields[cfg.Environment]
	switch cfg.DBDriver {
	case "postgres":
		required = append(required, "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME")
	case "sqlite":
		if cfg.Environment == Production {
			errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: "sqlite is not allowed in production"})
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	for _, field := range required {
		if fieldValue(cfg, field) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	if cfg.WebhookSecretHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.WebhookSecretHash)); err != nil {
			errs = append(errs, ValidationError{Field: "WEBHOOK_SECRET_HASH", Message: "must be a bcrypt hash"})
		}
	}

	if cfg.PlanRateLimitPerHour <= 0 {
		errs = append(errs, ValidationError{Field: "PLAN_RATE_LIMIT_PER_HOUR", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
