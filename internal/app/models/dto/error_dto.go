package dto

import "github.com/harish176/placement-portal/internal/pkg/apperrors"

// ErrorCode is the stable machine-readable code in the envelope's error field.
type ErrorCode string

const (
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeDuplicateKey     ErrorCode = "DUPLICATE_KEY"
	ErrorCodeInvalidID        ErrorCode = "INVALID_ID"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodeApprovalPending  ErrorCode = "APPROVAL_PENDING"
	ErrorCodeStudentNotFound  ErrorCode = "STUDENT_NOT_FOUND"
	ErrorCodeInternalServer   ErrorCode = "INTERNAL_ERROR"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"
)

var kindCodes = map[apperrors.Kind]ErrorCode{
	apperrors.KindValidation:      ErrorCodeValidationFailed,
	apperrors.KindDuplicateKey:    ErrorCodeDuplicateKey,
	apperrors.KindInvalidID:       ErrorCodeInvalidID,
	apperrors.KindNotFound:        ErrorCodeNotFound,
	apperrors.KindUnauthorized:    ErrorCodeUnauthorized,
	apperrors.KindForbidden:       ErrorCodeForbidden,
	apperrors.KindApprovalPending: ErrorCodeApprovalPending,
	apperrors.KindStudentNotFound: ErrorCodeStudentNotFound,
	apperrors.KindInternal:        ErrorCodeInternalServer,
}

// CodeForKind maps an error kind to its envelope code.
func CodeForKind(kind apperrors.Kind) ErrorCode {
	if code, ok := kindCodes[kind]; ok {
		return code
	}
	return ErrorCodeInternalServer
}

// FieldErrors is the data payload of a validation failure.
type FieldErrors struct {
	Errors map[string]string `json:"errors"`
}
