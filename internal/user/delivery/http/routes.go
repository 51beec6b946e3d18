package http

import (
	"users-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the /me group. Every route requires a bearer token.
func (h Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	me := r.Group("/me", mw.Auth())
	{
		me.GET("", h.DetailMe)
		me.GET("/notifications", h.ListNotifications)
		me.PUT("/propic", h.UpdatePropic)
	}
}
