// Package auth holds the request identity and the authorization gates that
// decide, from that identity and the route parameters alone, whether a
// request may proceed.
package auth

import (
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID     string
	Email  string
	Name   string
	Role   models.Role
	Status string
}

// IsAdmin reports whether the identity is an administrator.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// Params looks up a route parameter by name; missing parameters are "".
type Params func(name string) string

// Gate is a predicate over an identity and route parameters. A nil error
// lets the request through.
type Gate func(identity *Identity, params Params) error

// DefaultOwnerParams are the route parameters the self-or-admin gate
// compares against when none are given.
var DefaultOwnerParams = []string{"id", "userId", "studentId", "facultyId"}

// Check runs gates in order and returns the first failure.
func Check(identity *Identity, params Params, gates ...Gate) error {
	if identity == nil {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	if params == nil {
		params = func(string) string { return "" }
	}
	for _, gate := range gates {
		if err := gate(identity, params); err != nil {
			return err
		}
	}
	return nil
}

// RequireRole admits identities whose role is one of roles.
func RequireRole(roles ...models.Role) Gate {
	return func(identity *Identity, _ Params) error {
		for _, r := range roles {
			if identity.Role == r {
				return nil
			}
		}
		return apperrors.NewForbiddenError("You do not have permission to perform this action")
	}
}

// SelfOrAdmin admits admins, and anyone else whose id equals the first
// non-empty route parameter among names.
func SelfOrAdmin(names ...string) Gate {
	if len(names) == 0 {
		names = DefaultOwnerParams
	}
	return func(identity *Identity, params Params) error {
		if identity.IsAdmin() {
			return nil
		}
		for _, name := range names {
			if v := params(name); v != "" {
				if v == identity.ID {
					return nil
				}
				break
			}
		}
		return apperrors.NewForbiddenError("You can only access your own resources")
	}
}

// RequireApproval admits admins and faculty; students must be approved. The
// rejection carries the student's current status.
func RequireApproval() Gate {
	return func(identity *Identity, _ Params) error {
		if identity.Role != models.RoleStudent {
			return nil
		}
		if identity.Status == string(models.StudentApproved) {
			return nil
		}
		return apperrors.NewApprovalPendingError(identity.Status)
	}
}
