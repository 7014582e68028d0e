package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	want := map[Kind]int{
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
	for _, k := range Kinds() {
		assert.Equal(t, want[k], k.Status(), k)
		assert.NotNil(t, kindSentinels[k], "sentinel for %s", k)
	}
	assert.Len(t, want, len(Kinds()))
	assert.Equal(t, http.StatusInternalServerError, Kind("bogus").Status())
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("creating placement: %w", NewStudentNotFoundError("NOPE123"))

	assert.True(t, errors.Is(err, ErrStudentNotFound))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindStudentNotFound, KindOf(err))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "scholarNumber", appErr.Field)
	assert.Contains(t, appErr.Message, "NOPE123")
}

func TestKindOfUnknownIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestInternalErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError(cause)

	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestApprovalPendingEchoesStatus(t *testing.T) {
	err := NewApprovalPendingError("pending")
	assert.Equal(t, "pending", err.Data["status"])
	assert.Equal(t, http.StatusForbidden, err.Status())
}

func TestDuplicateKeyNamesField(t *testing.T) {
	err := NewDuplicateKeyError("email", nil)
	assert.Equal(t, "email", err.Field)
	assert.Equal(t, "A record with this email already exists", err.Message)
}
