package middleware

import (
	"net/http"
	"strings"

	"duebot-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// UserID extracts the authenticated user ID set by RequireAuth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Email extracts the authenticated user's email set by RequireAuth.
func Email(c *gin.Context) string {
	email, _ := c.Get(emailKey)
	s, _ := email.(string)
	return s
}

// RequireAuth validates the Authorization header and stores the user
// ID in the request context. Every invoice and reminder operation is
// gated behind this check.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(c, auth.ErrMissingToken.Error())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c, auth.ErrInvalidToken.Error())
			return
		}

		userID, claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			abortUnauthenticated(c, err.Error())
			return
		}

		c.Set(userIDKey, userID)
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": message,
		},
	})
}
