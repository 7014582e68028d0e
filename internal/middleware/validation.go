package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/validation"
)

// BindJSON decodes and validates the request body into out. Failures come
// back as validation errors keyed by JSON path.
func BindJSON(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return bindError(err)
	}
	return nil
}

// BindQuery binds and validates query parameters into out.
func BindQuery(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindQuery(out); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fieldPath(fe)] = validation.Message(fe)
		}
		return apperrors.NewValidationError("Validation failed", fields)
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.NewValidationError("Malformed JSON body", nil)
	}
	if errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("Request body is required", nil)
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		field := typeError.Field
		if field == "" {
			field = "body"
		}
		return apperrors.NewFieldError(field, "must be of type "+typeError.Type.String())
	}

	return apperrors.NewValidationError("Invalid request: "+err.Error(), nil)
}

// fieldPath turns the validator namespace into a JSON path. The validator
// already reports JSON names; segments that are still Go names (the root
// struct and embedded structs) are dropped.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	out := parts[:0]
	for _, p := range parts {
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return fe.Field()
	}
	return strings.Join(out, ".")
}
