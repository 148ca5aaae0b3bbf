package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/repository"
)

// apiError is the documented error shape of the key-authenticated API:
// {"success": false, "error": 401, "message": "..."}.
func apiError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": message,
	})
}

// APIKeyAuth authenticates integration calls via the x-api-key header and
// stores the resolved user in the context.
func APIKeyAuth(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" {
			apiError(c, http.StatusUnauthorized, "API key is missing.")
			return
		}

		user, err := users.GetByAPIKey(c.Request.Context(), key)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "Invalid API key.")
			return
		}

		c.Set("api_user", user)
		c.Next()
	}
}
