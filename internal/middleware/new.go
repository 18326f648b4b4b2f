package middleware

import (
	"crypto/hmac"

	"github.com/gin-gonic/gin"

	"notion-progress-linker/pkg/log"
	"notion-progress-linker/pkg/response"
)

// Middleware bundles the HTTP middlewares used by the API routes.
type Middleware struct {
	l      log.Logger
	apiKey string
}

func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}

// Auth requires the X-API-Key header to match the configured key. With no
// key configured all requests pass, which is the local development mode.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if !hmac.Equal([]byte(provided), []byte(m.apiKey)) {
			m.l.Warnf(c.Request.Context(), "rejected request to %s: invalid API key", c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
