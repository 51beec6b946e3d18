package middleware

import (
	"users-srv/internal/model"
	"users-srv/pkg/response"
	"users-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the verified model.IdentityClaims.
const ClaimsKey = "claims"

// Auth verifies the bearer token and stores the typed claims in the request context.
// A rejected request never reaches the handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		claims, err := m.extractor.Extract(ctx, c.Request.Header)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: %v | Path: %s", err, c.Request.URL.Path)
			response.AbortWithError(c, err, m.discord)
			return
		}

		ctx = scope.SetClaimsToContext(ctx, claims)
		ctx = m.l.With(ctx, "user_id", claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// GetClaims returns the claims stored by Auth.
func GetClaims(c *gin.Context) (model.IdentityClaims, bool) {
	return scope.GetClaimsFromContext[model.IdentityClaims](c.Request.Context())
}
