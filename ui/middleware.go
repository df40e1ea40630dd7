package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// RequireUser resolves the authenticated user. Identity itself is the
// external provider's job; by the time requests reach this API the
// gateway has stamped the verified subject into X-User-ID.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-ID header"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUser returns the user stamped by RequireUser.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}
