package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth is a middleware that authenticates requests using static API keys
// configured at startup.
func APIKeyAuth(apiKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip authentication for public routes
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		provided := c.GetHeader("x-api-key")
		if provided == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		for _, key := range apiKeys {
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
				c.Set("authMethod", "api_key")
				c.Next()
				return
			}
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Invalid API key")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	}
}

// isPublicRoute checks if the given path is a public route that doesn't require authentication
func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/health",
		"/api/v1/health",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}

	return false
}
