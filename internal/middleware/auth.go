package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/macroplan/backend/internal/types"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID    = "user_id"
	ContextProfileID = "profile_id"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Store caller info in context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextProfileID, claims.ProfileID)
		c.Next()
	}
}

// ProfileID returns the profile id stored by AuthMiddleware
func ProfileID(c *gin.Context) (string, bool) {
	v := c.GetString(ContextProfileID)
	return v, v != ""
}
