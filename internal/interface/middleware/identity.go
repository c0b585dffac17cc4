package middleware

import (
	"github.com/gin-gonic/gin"

	repo "github.com/uxelf/tasksapp/internal/domain/repository"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// Identity reads the jwt cookie and, when it verifies, establishes the
// request's authenticated identity in the Gin context. Any failure (missing
// cookie, bad signature, expiry, unknown user) silently degrades to an
// unauthenticated request; rejecting is left to RequireAuth on protected
// routes.
func Identity(jwt *helpers.JWTManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.TokenCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			c.Next()
			return
		}
		// The token is self-contained, but the user must still exist.
		if _, err := users.GetByID(c.Request.Context(), claims.UserID); err != nil {
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}
