package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error codes used across the service layer. The contract defines exactly
// two failure kinds; no other error is ever returned to callers.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that no record matches the given identifier.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewUnauthenticatedError reports that a write required a resolvable current
// user and none exists.
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

// IsNotFound reports whether err is a NOT_FOUND application error.
func IsNotFound(err error) bool {
	return errorCode(err) == CodeNotFound
}

// IsUnauthenticated reports whether err is an UNAUTHENTICATED application error.
func IsUnauthenticated(err error) bool {
	return errorCode(err) == CodeUnauthenticated
}

func errorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ErrorCode returns the application error code for err, or "" for foreign
// errors. Useful for metrics labels.
func ErrorCode(err error) string {
	return errorCode(err)
}

// ParseID coerces a string identifier to its integer form. Non-numeric input
// is reported as NOT_FOUND: an identifier that cannot be parsed can never
// match a record, and callers must not see it as a silent miss.
func ParseID(resource, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewNotFoundError(resource, raw)
	}
	return id, nil
}
