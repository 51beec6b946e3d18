package http

import (
	"users-srv/internal/auth"
	"users-srv/pkg/discord"
	pkgLog "users-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc auth.UseCase, d discord.IDiscord) Handler {
	return Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
