package http

import (
	"users-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("", mw.Auth(), h.Detail)
	r.PUT("/fcm-token", mw.Auth(), h.RegisterFCMToken)
}
