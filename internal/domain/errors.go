package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation ErrKind = "validation" // 400
	KindAuth       ErrKind = "auth"       // 401
	KindForbidden  ErrKind = "forbidden"  // 403
	KindNotFound   ErrKind = "not_found"  // 404
	KindConflict   ErrKind = "conflict"   // 409
	KindInternal   ErrKind = "internal"   // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: the exact string returned to clients
// - Cause: wrapped internal error for logging/diagnostics
//
// Clients only ever see Message; Kind and Code stay internal.
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return New(KindValidation, "missing_field", fmt.Sprintf("%s is required", field))
}

func ErrInvalidField(field, reason string) *Error {
	return New(KindValidation, "invalid_field", fmt.Sprintf("%s is invalid: %s", field, reason))
}

func ErrInvalidRole(role string) *Error {
	return New(KindValidation, "invalid_role", fmt.Sprintf("unknown role %q", role))
}

// Wrong password on login. The message matches what existing clients expect.
func ErrInvalidPassword() *Error {
	return New(KindValidation, "invalid_password", "Invalid password or email")
}

func ErrInvalidUpload(reason string) *Error {
	return New(KindValidation, "invalid_upload", fmt.Sprintf("upload failed: %s", reason))
}

// ----------------------
// Auth errors (401)
// ----------------------

// Token errors share one client-visible message so the boundary does not
// reveal which verification step failed.
const tokenRejectedMessage = "invalid or expired token"

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "authentication required")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", tokenRejectedMessage)
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", tokenRejectedMessage)
}

// Identity expected in the request context but absent (guard ran without the
// auth middleware, or the middleware let nothing through).
func ErrAuthenticationRequired() *Error {
	return New(KindAuth, "auth_required", "authentication required")
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrPermissionDenied() *Error {
	return New(KindForbidden, "permission_denied", "permission denied")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not Found")
}

func ErrTaskNotFound() *Error {
	return New(KindNotFound, "task_not_found", "Task not found")
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, "email_already_exists", "email already registered")
}

// ----------------------
// Internal (500)
// ----------------------

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrStoreFailure(cause error) *Error {
	return Wrap(KindInternal, "store_failure", "storage operation failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
