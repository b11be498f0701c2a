package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidRoom      = "invalid_room"
	ErrCodeNotAuthenticated = "not_authenticated"
	ErrCodeStorage          = "storage_error"
)

var (
	// ErrSelfRoom is returned when a private room is derived from one identity.
	ErrSelfRoom = errors.New("cannot open a private room with yourself")
	// ErrEmptyIdentity is returned when a room participant is missing.
	ErrEmptyIdentity = errors.New("empty identity")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
