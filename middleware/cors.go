package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware reflects the origin when it is on the ALLOWED_ORIGINS list
// (comma separated). An empty list allows any origin, for local development.
func CORSMiddleware() gin.HandlerFunc {
	allowed := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allow := os.Getenv("ALLOWED_ORIGINS") == ""
		for _, candidate := range allowed {
			if origin != "" && origin == strings.TrimSpace(candidate) {
				allow = true
				break
			}
		}

		if allow && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if allow {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
