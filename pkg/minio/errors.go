package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
)

// StorageError is returned by every Storage operation that fails.
type StorageError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Operation string `json:"operation"`
	Cause     error  `json:"-"`
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewConnectionError(err error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "storage connection failed", Cause: err}
}

func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch minioErr.Code {
		case "NoSuchBucket":
			return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found", Operation: operation, Cause: err}
		case "NoSuchKey":
			return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found", Operation: operation, Cause: err}
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{
				Code:      ErrCodeConnection,
				Message:   fmt.Sprintf("minio operation failed: %s", minioErr.Code),
				Operation: operation,
				Cause:     err,
			}
		}
	}

	e := NewConnectionError(err)
	e.Operation = operation
	return e
}
