package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// TokenAuthMiddleware guards the admin routes with a static bearer token.
// A missing or malformed Authorization header aborts with 401; a token that
// does not match the configured secret aborts with 403, before any handler
// logic runs.
func TokenAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Missing or invalid authorization header",
			})
			return
		}

		token := header[len(bearerPrefix):]
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		c.Next()
	}
}
