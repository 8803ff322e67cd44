package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/weblanjutan/jobseeker-api/internal/auth"
	"github.com/weblanjutan/jobseeker-api/internal/models"
)

const currentUserKey = "currentUser"

// UserResolver loads the token subject from storage so that tokens
// for deleted accounts stop working immediately.
type UserResolver interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// RequireAuth verifies the bearer token and re-resolves the subject
// against the user store on every request.
func RequireAuth(tokens *auth.TokenManager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
