package response

import "users-srv/pkg/errors"

const (
	DefaultStackTraceDepth = 32
	DiscordMaxMessageLen   = 4000
)

// Resp is the failure body. Success bodies are built from gin.H.
type Resp struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorMapping translates domain sentinels into client facing errors.
type ErrorMapping map[error]*errors.Error
