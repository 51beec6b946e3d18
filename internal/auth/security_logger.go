package auth

import (
	"context"
	"strings"

	"users-srv/pkg/log"
)

// SecurityEventType names an authentication event worth auditing.
type SecurityEventType string

const (
	SecurityEventLoginFailure      SecurityEventType = "login_failure"
	SecurityEventDuplicateRegister SecurityEventType = "duplicate_registration"
	SecurityEventStaleToken        SecurityEventType = "stale_token"
)

// SecurityLogger writes audit lines for authentication events.
// Emails are masked so the log never holds a full address.
type SecurityLogger struct {
	l log.Logger
}

func NewSecurityLogger(l log.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}

func (sl *SecurityLogger) LogLoginFailure(ctx context.Context, email, reason string) {
	sl.l.Warnf(ctx, "SECURITY: %s - email=%s reason=%s", SecurityEventLoginFailure, MaskEmail(email), reason)
}

func (sl *SecurityLogger) LogDuplicateRegister(ctx context.Context, email string) {
	sl.l.Warnf(ctx, "SECURITY: %s - email=%s", SecurityEventDuplicateRegister, MaskEmail(email))
}

// LogStaleToken records a valid token whose user no longer exists.
func (sl *SecurityLogger) LogStaleToken(ctx context.Context, userID string) {
	sl.l.Warnf(ctx, "SECURITY: %s - user=%s", SecurityEventStaleToken, userID)
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
