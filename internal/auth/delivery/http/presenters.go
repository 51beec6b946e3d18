package http

import (
	"strings"

	"users-srv/internal/auth"
	"users-srv/internal/model"
)

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    strings.TrimSpace(r.Email),
		Name:     strings.TrimSpace(r.Name),
		Surname:  strings.TrimSpace(r.Surname),
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type fcmTokenReq struct {
	Token string `json:"token" binding:"required"`
}

func (r fcmTokenReq) toInput() auth.RegisterFCMTokenInput {
	return auth.RegisterFCMTokenInput{Token: r.Token}
}

type claimsResp struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	PropicURL *string `json:"propic_url,omitempty"`
}

func newClaimsResp(sc model.IdentityClaims) claimsResp {
	return claimsResp{
		UserID:    sc.UserID,
		Name:      sc.Name,
		Surname:   sc.Surname,
		PropicURL: sc.PropicURL,
	}
}
