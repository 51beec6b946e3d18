package errors

// Kind groups failures by how a client should react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindValidationFailed
	KindBadRequestBody
	KindUnauthorized
	KindConflict
	KindNotFound
	KindUnavailable
)

// Error is the single failure shape that reaches the transport boundary.
type Error struct {
	Kind   Kind
	Code   string
	Fields []string
	Cause  error
}
