package scope

// Reason codes exposed to clients.
const (
	CodeNoAuthHeader      = "no_auth_header"
	CodeInvalidAuthHeader = "invalid_auth_header"
	CodeNoBearer          = "no_bearer_specified"
	CodeInvalidToken      = "invalid_token"
)

// Kind is the stage at which extraction failed.
type Kind int

const (
	KindNoHeader Kind = iota + 1
	KindInvalidHeader
	KindNoBearerToken
	KindTokenInvalid
)

// AuthError is returned by Extract when the request carries no usable credential.
type AuthError struct {
	Kind Kind
	Err  error
}

var (
	ErrNoHeader      = &AuthError{Kind: KindNoHeader}
	ErrInvalidHeader = &AuthError{Kind: KindInvalidHeader}
	ErrNoBearerToken = &AuthError{Kind: KindNoBearerToken}
	ErrTokenInvalid  = &AuthError{Kind: KindTokenInvalid}
)

// Code returns the stable client facing reason.
func (e *AuthError) Code() string {
	switch e.Kind {
	case KindNoHeader:
		return CodeNoAuthHeader
	case KindInvalidHeader:
		return CodeInvalidAuthHeader
	case KindNoBearerToken:
		return CodeNoBearer
	default:
		return CodeInvalidToken
	}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return "scope: " + e.Code() + ": " + e.Err.Error()
	}
	return "scope: " + e.Code()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}
