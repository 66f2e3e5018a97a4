package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error. The HTTP layer maps
// each code to a public (status, client code) pair; everything below the
// HTTP boundary discriminates on these codes, never on strings.
type ErrorCode string

const (
	// ErrCodeUnauthenticated indicates a request with no bearer credential.
	ErrCodeUnauthenticated ErrorCode = "unauthenticated"
	// ErrCodeInvalidAccess indicates a malformed or badly signed access token.
	ErrCodeInvalidAccess ErrorCode = "invalid_access"
	// ErrCodeAccessExpired indicates a well-formed access token past its exp.
	// The refresh flow depends on this being distinguishable from
	// ErrCodeInvalidAccess.
	ErrCodeAccessExpired ErrorCode = "access_expired"
	// ErrCodeRefreshExpired indicates a refresh token past its exp.
	ErrCodeRefreshExpired ErrorCode = "refresh_expired"
	// ErrCodeRefreshInvalid indicates a refresh attempt that must be refused:
	// a malformed refresh token, or a refresh while the access token is
	// still live.
	ErrCodeRefreshInvalid ErrorCode = "refresh_invalid"
	// ErrCodeRefreshNoSession indicates the presented token pair does not
	// match any session-ledger row.
	ErrCodeRefreshNoSession ErrorCode = "refresh_no_session"
	// ErrCodeLogoutNoSession indicates a logout whose (refresh, access,
	// principal) triple matched no ledger row.
	ErrCodeLogoutNoSession ErrorCode = "logout_no_session"
	// ErrCodeLoginUnknownPrincipal indicates no principal with the presented
	// natural key. Collapsed with wrong-password in the public mapping so the
	// response does not leak which field failed.
	ErrCodeLoginUnknownPrincipal ErrorCode = "login_unknown_principal"
	// ErrCodeLoginWrongPassword indicates a failed credential check at login.
	ErrCodeLoginWrongPassword ErrorCode = "login_wrong_password"
	// ErrCodeCurrentPassword indicates the current-password check on a
	// password change failed.
	ErrCodeCurrentPassword ErrorCode = "current_password_mismatch"
	// ErrCodeForbidden indicates the principal's role does not grant the
	// operation.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeConflict indicates a duplicate natural key; Table and Field
	// attribute the conflict to the violated column.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeNotFound indicates a missing entity.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data, optionally scoped to a
	// field.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeForeignKey indicates a foreign key constraint violation.
	ErrCodeForeignKey ErrorCode = "foreign_key"
	// ErrCodePasswordHash indicates a stored credential hash that could not
	// be parsed. Surfaces as a service error; it means corrupt data.
	ErrCodePasswordHash ErrorCode = "password_hash_malformed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for
	// validation and duplicate-key errors)
	Field string
	// Table is the table a duplicate-key conflict occurred in (optional)
	Table string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// DuplicateKey creates a Conflict error attributed to a table and column.
func DuplicateKey(table, column string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: fmt.Sprintf("duplicate value for %s.%s", table, column),
		Table:   table,
		Field:   column,
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Forbidden creates a role-gate failure error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// Unauthenticated creates an error for requests with no credential.
func Unauthenticated(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthenticated, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsConflict checks if an error is a duplicate-key Conflict error.
func IsConflict(err error) bool { return isCode(err, ErrCodeConflict) }

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsForbidden checks if an error is a role-gate failure.
func IsForbidden(err error) bool { return isCode(err, ErrCodeForbidden) }

// IsAccessExpired checks if an error is an expired-access-token error.
func IsAccessExpired(err error) bool { return isCode(err, ErrCodeAccessExpired) }

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool { return isCode(err, ErrCodeInternal) }

// GetCode returns the ErrorCode from an error, or empty string if not an
// AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an
// AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// AsAppError extracts an *AppError from err, wrapping unknown errors as
// Internal so the HTTP boundary always has a code to map.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: ErrCodeInternal, Message: "internal error", Cause: err}
}
