package http

import (
	"errors"

	"users-srv/internal/middleware"
	"users-srv/internal/model"
	pkgErrors "users-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON keeps validation failures for the taxonomy and turns anything else into invalid_body.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return pkgErrors.NewBadRequestBody(err)
}

func (h Handler) processRegisterRequest(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processRegisterRequest: %v", err)
		return registerReq{}, err
	}
	return req, nil
}

func (h Handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processLoginRequest: %v", err)
		return loginReq{}, err
	}
	return req, nil
}

func (h Handler) processFCMTokenRequest(c *gin.Context) (model.IdentityClaims, fcmTokenReq, error) {
	sc, ok := middleware.GetClaims(c)
	if !ok {
		return model.IdentityClaims{}, fcmTokenReq{}, errMissingClaims
	}

	var req fcmTokenReq
	if err := bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processFCMTokenRequest: %v", err)
		return model.IdentityClaims{}, fcmTokenReq{}, err
	}
	return sc, req, nil
}
