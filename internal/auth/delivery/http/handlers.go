package http

import (
	"users-srv/internal/middleware"
	"users-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Register creates an account and answers with its first token.
// POST /auth/register
func (h Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Register: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, gin.H{"token": o.Token})
}

// Login exchanges email and password for a token.
// POST /auth/login
func (h Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, gin.H{"token": o.Token})
}

// Detail echoes the claims carried by the caller's token.
// GET /auth
func (h Handler) Detail(c *gin.Context) {
	sc, ok := middleware.GetClaims(c)
	if !ok {
		response.Error(c, errMissingClaims, nil)
		return
	}

	response.OK(c, gin.H{"user": newClaimsResp(sc)})
}

// RegisterFCMToken links a push notification device token to the caller.
// PUT /auth/fcm-token
func (h Handler) RegisterFCMToken(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processFCMTokenRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RegisterFCMToken(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.RegisterFCMToken: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
