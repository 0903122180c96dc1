package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"boardimport/internal/model"
	"boardimport/pkg/response"
)

const scopeKey = "scope"

// Auth verifies the session bearer token and stores the resulting scope on the
// gin context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := extractBearerToken(c)
		if token == "" {
			m.l.Warnf(ctx, "auth: missing bearer token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: claims.UserID,
			Token:  token,
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by the Auth middleware.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
