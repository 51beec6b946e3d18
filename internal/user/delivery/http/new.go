package http

import (
	"users-srv/internal/user"
	"users-srv/pkg/discord"
	pkgLog "users-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc user.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc user.UseCase, d discord.IDiscord) Handler {
	return Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
