package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure classes the HTTP layer knows how to render.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindDuplicateKey    Kind = "duplicate_key"
	KindInvalidID       Kind = "invalid_id"
	KindNotFound        Kind = "not_found"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindApprovalPending Kind = "approval_pending"
	KindStudentNotFound Kind = "student_not_found"
	KindInternal        Kind = "internal"
)

// Sentinels, one per kind, for errors.Is checks.
var (
	ErrValidation      = errors.New("validation failed")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidID       = errors.New("invalid identifier")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrApprovalPending = errors.New("approval pending")
	ErrStudentNotFound = errors.New("student not found")
	ErrInternal        = errors.New("internal error")
)

var kindSentinels = map[Kind]error{
	KindValidation:      ErrValidation,
	KindDuplicateKey:    ErrDuplicateKey,
	KindInvalidID:       ErrInvalidID,
	KindNotFound:        ErrNotFound,
	KindUnauthorized:    ErrUnauthorized,
	KindForbidden:       ErrForbidden,
	KindApprovalPending: ErrApprovalPending,
	KindStudentNotFound: ErrStudentNotFound,
	KindInternal:        ErrInternal,
}

var kindStatus = map[Kind]int{
	KindValidation:      http.StatusBadRequest,
	KindDuplicateKey:    http.StatusBadRequest,
	KindInvalidID:       http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindUnauthorized:    http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindApprovalPending: http.StatusForbidden,
	KindStudentNotFound: http.StatusBadRequest,
	KindInternal:        http.StatusInternalServerError,
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindValidation, KindDuplicateKey, KindInvalidID, KindNotFound, KindUnauthorized,
		KindForbidden, KindApprovalPending, KindStudentNotFound, KindInternal,
	}
}

// Status returns the HTTP status for a kind.
func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error carries a kind plus the user-facing context for that kind.
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending field for duplicate keys.
	Field string
	// Fields is the per-field message map of a validation failure.
	Fields map[string]string
	// Data is echoed to clients, e.g. the current status of a pending student.
	Data map[string]interface{}
	// Err is the underlying cause; never rendered to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// Status returns the HTTP status code of the error's kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// As extracts an *Error from a wrapped chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf classifies any error; unknown errors are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// NewValidationError builds a validation failure from a field->message map.
func NewValidationError(message string, fields map[string]string) *Error {
	if message == "" {
		message = "Validation failed"
	}
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NewFieldError is a validation failure on a single field.
func NewFieldError(field, message string) *Error {
	return NewValidationError("Validation failed", map[string]string{field: message})
}

// NewDuplicateKeyError reports a unique-constraint violation on field.
func NewDuplicateKeyError(field string, cause error) *Error {
	msg := "Duplicate value"
	if field != "" {
		msg = fmt.Sprintf("A record with this %s already exists", field)
	}
	return &Error{Kind: KindDuplicateKey, Message: msg, Field: field, Err: cause}
}

// NewInvalidIDError reports a malformed identifier.
func NewInvalidIDError(value string) *Error {
	return &Error{Kind: KindInvalidID, Message: fmt.Sprintf("Invalid ID format: %q", value)}
}

// NewNotFoundError reports a missing resource, e.g. NewNotFoundError("Student").
func NewNotFoundError(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// NewUnauthorizedError is a 401.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewForbiddenError is a 403.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewApprovalPendingError echoes the student's current status.
func NewApprovalPendingError(status string) *Error {
	return &Error{
		Kind:    KindApprovalPending,
		Message: "Your account is awaiting approval",
		Data:    map[string]interface{}{"status": status},
	}
}

// NewStudentNotFoundError reports a scholar number that resolves to no student.
func NewStudentNotFoundError(scholarNumber string) *Error {
	return &Error{
		Kind:    KindStudentNotFound,
		Message: fmt.Sprintf("No student found with scholar number %s", scholarNumber),
		Field:   "scholarNumber",
	}
}

// NewInternalError wraps an unexpected cause.
func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: cause}
}
