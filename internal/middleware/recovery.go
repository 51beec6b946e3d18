package middleware

import (
	"users-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 internal_server_error response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)
				response.PanicError(c, rec, m.discord)
			}
		}()
		c.Next()
	}
}
