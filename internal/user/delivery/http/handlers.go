package http

import (
	"users-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// DetailMe returns the profile of the token owner.
// GET /me
func (h Handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processClaims(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.DetailMe: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, gin.H{"user": newUserResp(o.User)})
}

// ListNotifications returns the notifications addressed to the token owner, newest first.
// GET /me/notifications
func (h Handler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processClaims(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.ListNotifications(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.ListNotifications: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, gin.H{"notifications": newNotificationsResp(o.Notifications)})
}

// UpdatePropic stores a new profile picture and answers with a refreshed token.
// PUT /me/propic, multipart field "file"
func (h Handler) UpdatePropic(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdatePropicRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	f, err := req.File.Open()
	if err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.UpdatePropic.Open: %v", err)
		response.Error(c, err, h.d)
		return
	}
	defer f.Close()

	o, err := h.uc.UpdatePropic(ctx, sc, req.toInput(f))
	if err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.UpdatePropic: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, gin.H{
		"token":      o.Token,
		"propic_url": o.User.PropicURL,
	})
}
