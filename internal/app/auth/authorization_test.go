package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

func params(kv map[string]string) Params {
	return func(name string) string { return kv[name] }
}

func TestRequireRole(t *testing.T) {
	gate := RequireRole(models.RoleAdmin, models.RoleFaculty)

	assert.NoError(t, gate(&Identity{Role: models.RoleFaculty}, params(nil)))
	err := gate(&Identity{Role: models.RoleStudent}, params(nil))
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		params   map[string]string
		gate     Gate
		allowed  bool
	}{
		{"admin always", Identity{ID: "a", Role: models.RoleAdmin}, map[string]string{"id": "b"}, SelfOrAdmin(), true},
		{"owner by id", Identity{ID: "s1", Role: models.RoleStudent}, map[string]string{"id": "s1"}, SelfOrAdmin(), true},
		{"owner by studentId", Identity{ID: "s1", Role: models.RoleStudent}, map[string]string{"studentId": "s1"}, SelfOrAdmin(), true},
		{"someone else", Identity{ID: "s1", Role: models.RoleStudent}, map[string]string{"id": "s2"}, SelfOrAdmin(), false},
		{"first present param decides", Identity{ID: "s1", Role: models.RoleStudent}, map[string]string{"id": "s2", "studentId": "s1"}, SelfOrAdmin(), false},
		{"no param", Identity{ID: "s1", Role: models.RoleStudent}, nil, SelfOrAdmin(), false},
		{"custom names", Identity{ID: "f1", Role: models.RoleFaculty}, map[string]string{"facultyId": "f1"}, SelfOrAdmin("facultyId"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gate(&tt.identity, params(tt.params))
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrForbidden))
			}
		})
	}
}

func TestRequireApproval(t *testing.T) {
	gate := RequireApproval()

	assert.NoError(t, gate(&Identity{Role: models.RoleAdmin}, params(nil)))
	assert.NoError(t, gate(&Identity{Role: models.RoleFaculty, Status: "active"}, params(nil)))
	assert.NoError(t, gate(&Identity{Role: models.RoleStudent, Status: "approved"}, params(nil)))

	err := gate(&Identity{Role: models.RoleStudent, Status: "pending"}, params(nil))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindApprovalPending, appErr.Kind)
	assert.Equal(t, "pending", appErr.Data["status"])
}

func TestCheckShortCircuits(t *testing.T) {
	var ran []string
	gate := func(name string, fail bool) Gate {
		return func(*Identity, Params) error {
			ran = append(ran, name)
			if fail {
				return apperrors.NewForbiddenError(name)
			}
			return nil
		}
	}

	err := Check(&Identity{}, nil, gate("a", false), gate("b", true), gate("c", false))

	assert.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCheckRequiresIdentity(t *testing.T) {
	err := Check(nil, nil, RequireApproval())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
