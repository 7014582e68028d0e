// Package seed creates the data a fresh deployment needs to be usable.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
)

// AdminStore is the faculty storage the admin seed needs.
type AdminStore interface {
	CountAdmins(ctx context.Context) (int64, error)
	GetByEmail(ctx context.Context, email string) (*appModels.Faculty, error)
	Create(ctx context.Context, f *appModels.Faculty) error
}

// AdminAccount is the configured bootstrap administrator.
type AdminAccount struct {
	Email    string
	Password string
	Name     string
}

// EnsureAdmin creates the configured administrator when no active admin
// exists. It returns true when an account was created.
func EnsureAdmin(ctx context.Context, store AdminStore, hasher *pkgAuth.PasswordHasher, admin AdminAccount, lgr zerolog.Logger) (bool, error) {
	count, err := store.CountAdmins(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("admins", count).Msg("Admin account present, skipping seed")
		return false, nil
	}

	if admin.Email == "" || admin.Password == "" {
		lgr.Warn().Msg("No admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return false, nil
	}

	// an inactive or non-admin document may already own the address
	if _, err := store.GetByEmail(ctx, admin.Email); err == nil {
		lgr.Warn().Str("email", admin.Email).Msg("Admin email already in use, skipping seed")
		return false, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("look up admin email: %w", err)
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}
	f := &appModels.Faculty{
		Name:        name,
		Email:       admin.Email,
		Password:    hash,
		Department:  "Training & Placement Cell",
		Designation: "Administrator",
		Role:        appModels.RoleAdmin,
		Status:      appModels.FacultyActive,
		IsActive:    true,
	}
	if err := store.Create(ctx, f); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	lgr.Info().Str("adminID", f.ID.Hex()).Str("email", f.Email).Msg("Default admin account created")
	return true, nil
}
