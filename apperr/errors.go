package apperr

import (
	"errors"
	"net/http"
)

// Error codes used across the API. Each maps to a fixed HTTP status.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeInvalidToken       = "AUTH_TOKEN_INVALID"
	CodeOwnershipViolation = "RESOURCE_OWNERSHIP_VIOLATION"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeAlreadyExists      = "RESOURCE_ALREADY_EXISTS"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error is a service-level error with a stable code and HTTP status.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Validation builds a 400 error for malformed or incomplete input.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// InvalidCredentials builds a 401 error for failed logins. The message is
// fixed so that unknown-email and wrong-password cases are indistinguishable.
func InvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid email or password", Status: http.StatusUnauthorized}
}

// InvalidToken builds a 401 error for missing, malformed or expired tokens.
func InvalidToken(message string) *Error {
	return &Error{Code: CodeInvalidToken, Message: message, Status: http.StatusUnauthorized}
}

// OwnershipViolation builds a 403 error for user-record access by a non-owner.
func OwnershipViolation(message string) *Error {
	return &Error{Code: CodeOwnershipViolation, Message: message, Status: http.StatusForbidden}
}

// Forbidden builds a 403 error for resource access by a non-owner.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

// NotFound builds a 404 error. Malformed identifiers map here as well: the
// caller cannot distinguish a bad id from a missing document.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

// AlreadyExists builds a 409 error for duplicate-email registration.
func AlreadyExists(message string) *Error {
	return &Error{Code: CodeAlreadyExists, Message: message, Status: http.StatusConflict}
}

// Internal builds a 500 error.
func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Message: message, Status: http.StatusInternalServerError}
}

// From normalizes any error into an *Error. Unrecognized errors become
// internal errors with their message preserved.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}
