package router

import (
	"net/http"
	"strings"

	"github.com/chandu-aravapalli/BetterMind/internal/auth"
	"github.com/chandu-aravapalli/BetterMind/internal/handlers"
	"github.com/chandu-aravapalli/BetterMind/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthRequired validates the bearer token and loads the user it was issued
// for into the context. A token for a deleted user is rejected the same as
// an invalid one.
func AuthRequired(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := repository.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			log.Warn("Token subject no longer exists", zap.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		handlers.SetCurrentUser(c, user)
		c.Next()
	}
}

// RoleRequired gates a route group to one role. Runs after AuthRequired.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := handlers.CurrentUser(c)
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
