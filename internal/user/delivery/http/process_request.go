package http

import (
	"users-srv/internal/middleware"
	"users-srv/internal/model"
	pkgErrors "users-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

var errMissingClaims = pkgErrors.NewUnauthorized(pkgErrors.CodeInvalidToken)

func (h Handler) processClaims(c *gin.Context) (model.IdentityClaims, error) {
	sc, ok := middleware.GetClaims(c)
	if !ok {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processClaims: claims missing from context")
		return model.IdentityClaims{}, errMissingClaims
	}
	return sc, nil
}

func (h Handler) processUpdatePropicRequest(c *gin.Context) (model.IdentityClaims, updatePropicReq, error) {
	sc, err := h.processClaims(c)
	if err != nil {
		return model.IdentityClaims{}, updatePropicReq{}, err
	}

	var req updatePropicReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processUpdatePropicRequest: %v", err)
		return model.IdentityClaims{}, updatePropicReq{}, errInvalidPropic
	}
	return sc, req, nil
}
