package token

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTTL is used when no usable TTL is configured.
const DefaultTTL = 7200 * time.Second

// Envelope wraps a claims payload with its expiry. Values are immutable.
type Envelope[P any] struct {
	expiresAt uint64
	payload   P
}

// Wrap stamps payload with an expiry of now+ttl. A non positive ttl means DefaultTTL.
func Wrap[P any](payload P, now time.Time, ttl time.Duration) Envelope[P] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return Envelope[P]{
		expiresAt: uint64(now.Add(ttl).Unix()),
		payload:   payload,
	}
}

// Payload returns the wrapped claims.
func (e Envelope[P]) Payload() P {
	return e.payload
}

// ExpiresAt returns the expiry in seconds since epoch.
func (e Envelope[P]) ExpiresAt() uint64 {
	return e.expiresAt
}

// ParseTTL reads a TTL expressed in whole seconds.
// Empty, unparsable or non positive input falls back to DefaultTTL; it never fails.
func ParseTTL(raw string) time.Duration {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || secs <= 0 {
		return DefaultTTL
	}
	return time.Duration(secs) * time.Second
}
