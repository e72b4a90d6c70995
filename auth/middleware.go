package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"careerlog-backend/apperr"
)

const contextUserIDKey = "userID"

// RequireAuth returns gin middleware that verifies the Bearer credential and
// stores the authenticated user id in the request context.
func RequireAuth(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		if claims.Subject == "" {
			abortUnauthorized(c, "Token missing subject")
			return
		}

		c.Set(contextUserIDKey, claims.Subject)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperr.InvalidToken(message)
	c.AbortWithStatusJSON(err.Status, gin.H{
		"success": false,
		"data":    nil,
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}
