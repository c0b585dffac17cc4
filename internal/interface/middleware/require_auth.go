package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uxelf/tasksapp/pkg/response"
)

// RequireAuth aborts with 401 unless Identity established a user for this
// request. Apply to every route outside the public allow-list (register,
// login, logout).
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserIDKey) == "" {
			response.AbortError(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		c.Next()
	}
}
