package middleware

import (
	"users-srv/internal/model"
	"users-srv/pkg/discord"
	"users-srv/pkg/log"
	"users-srv/pkg/scope"
)

type Middleware struct {
	l         log.Logger
	extractor *scope.Extractor[model.IdentityClaims]
	discord   discord.IDiscord
}

// New builds the shared middleware set. d may be nil when bug reports are disabled.
func New(l log.Logger, extractor *scope.Extractor[model.IdentityClaims], d discord.IDiscord) Middleware {
	return Middleware{
		l:         l,
		extractor: extractor,
		discord:   d,
	}
}
