package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// WebhookSecretHeader carries the shared secret of webhook callers
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret rejects requests whose X-Webhook-Secret header does not
// match the bcrypt hash.
func WebhookSecret(secretHash string) gin.HandlerFunc {
	hash := []byte(secretHash)
	return func(c *gin.Context) {
		secret := c.GetHeader(WebhookSecretHeader)
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing webhook secret"})
			return
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
			log.Printf("Rejected webhook call from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
			return
		}
		c.Next()
	}
}
