package models

import (
	"errors"
	"fmt"
)

// Error codes returned in API responses. Expected conditions (bad
// credentials, short payment) are reported through these codes in result
// values, not through thrown errors.
const (
	CodeInvalidCredentials  = "invalid_credentials"
	CodeSessionExpired      = "session_expired"
	CodeValidationError     = "validation_error"
	CodeInsufficientPayment = "insufficient_payment"
	CodeInvalidAmount       = "invalid_amount"
	CodeStorageFailure      = "storage_failure"
	CodeUploadFailure       = "upload_failure"
	CodeNetworkError        = "network_error"
	CodeUnknownError        = "unknown_error"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionExpired     = errors.New("session expired")
	ErrNotFound           = errors.New("record not found")
)

// StorageError wraps a backend failure with the name of the operation
// that failed, so callers can surface it without crashing.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
