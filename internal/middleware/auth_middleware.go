package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	appAuth "github.com/harish176/placement-portal/internal/app/auth"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
)

const identityKey = "identity"

// TokenVerifier checks access tokens.
type TokenVerifier interface {
	VerifyAccess(tokenString string) (*pkgAuth.AccessClaims, error)
}

// AccountLoader loads the stored account a token refers to.
type AccountLoader interface {
	LoadAccount(ctx context.Context, id string, role models.Role) (*models.Account, error)
}

// authState is the outcome of authenticating one request.
type authState int

const (
	stateNoToken authState = iota
	stateInvalid
	stateUserNotFound
	stateUserInactive
	stateOK
)

var stateMessages = map[authState]string{
	stateNoToken:      "Authentication required",
	stateInvalid:      "Invalid or expired token",
	stateUserNotFound: "User not found",
	stateUserInactive: "Account is deactivated",
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens   TokenVerifier
	accounts AccountLoader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenVerifier, accounts AccountLoader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, accounts: accounts}
}

// JWTAuth authenticates the request and attaches the identity built from
// the stored account, not from the token claims.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, identity, err := m.authenticate(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if state != stateOK {
			HandleAPIError(c, apperrors.NewUnauthorizedError(stateMessages[state]))
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// authenticate walks NO_TOKEN -> INVALID -> USER_NOT_FOUND -> USER_INACTIVE
// -> OK. A non-nil error is a storage failure, not an auth outcome.
func (m *AuthMiddleware) authenticate(c *gin.Context) (authState, *appAuth.Identity, error) {
	token, ok := pkgAuth.ExtractFromHeader(c.GetHeader("Authorization"))
	if !ok {
		return stateNoToken, nil, nil
	}

	claims, err := m.tokens.VerifyAccess(token)
	if err != nil {
		return stateInvalid, nil, nil
	}

	acc, err := m.accounts.LoadAccount(c.Request.Context(), claims.UserID, models.Role(claims.Role))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return stateUserNotFound, nil, nil
		}
		return stateInvalid, nil, err
	}
	if !acc.IsActive {
		return stateUserInactive, nil, nil
	}

	return stateOK, &appAuth.Identity{
		ID:     acc.ID.Hex(),
		Email:  acc.Email,
		Name:   acc.Name,
		Role:   acc.Role,
		Status: acc.Status,
	}, nil
}

// IdentityFrom returns the identity attached by JWTAuth, or nil.
func IdentityFrom(c *gin.Context) *appAuth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*appAuth.Identity)
	return identity
}

// Require runs gates against the attached identity and route parameters.
func (m *AuthMiddleware) Require(gates ...appAuth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := appAuth.Check(IdentityFrom(c), c.Param, gates...); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// RequireRole admits only the given roles.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return m.Require(appAuth.RequireRole(roles...))
}

// AdminOnly is RequireRole(admin).
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return m.RequireRole(models.RoleAdmin)
}

// SelfOrAdmin admits admins and the owner named by one of params.
func (m *AuthMiddleware) SelfOrAdmin(params ...string) gin.HandlerFunc {
	return m.Require(appAuth.SelfOrAdmin(params...))
}

// RequireApproval blocks students whose registration is not approved.
func (m *AuthMiddleware) RequireApproval() gin.HandlerFunc {
	return m.Require(appAuth.RequireApproval())
}
