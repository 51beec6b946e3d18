package errors

// Client visible reason codes.
const (
	CodeInvalidFields       = "invalid_fields"
	CodeInvalidBody         = "invalid_body"
	CodeDuplicateRow        = "duplicate_row"
	CodeInternalServerError = "internal_server_error"
	CodeAsyncError          = "async_error"
	CodeInvalidToken        = "invalid_token"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUserNotFound        = "user_not_found"
	CodeNotFound            = "not_found"
	CodeServiceUnavailable  = "service_unavailable"
)
