package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
)

type memoryStore struct {
	admins  int64
	byEmail map[string]*appModels.Faculty
	created []*appModels.Faculty
	err     error
}

func (m *memoryStore) CountAdmins(context.Context) (int64, error) { return m.admins, m.err }

func (m *memoryStore) GetByEmail(_ context.Context, email string) (*appModels.Faculty, error) {
	if f, ok := m.byEmail[email]; ok {
		return f, nil
	}
	return nil, apperrors.NewNotFoundError("Faculty")
}

func (m *memoryStore) Create(_ context.Context, f *appModels.Faculty) error {
	m.created = append(m.created, f)
	return nil
}

func TestEnsureAdmin(t *testing.T) {
	hasher := pkgAuth.NewPasswordHasher(bcrypt.MinCost)
	account := AdminAccount{Email: "admin@college.edu", Password: "changeme", Name: "TPO"}

	t.Run("creates when none exist", func(t *testing.T) {
		store := &memoryStore{}
		created, err := EnsureAdmin(context.Background(), store, hasher, account, zerolog.Nop())
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, store.created, 1)
		f := store.created[0]
		assert.Equal(t, appModels.RoleAdmin, f.Role)
		assert.True(t, f.IsActive)
		assert.True(t, hasher.Compare(f.Password, "changeme"))
	})

	t.Run("skips when an admin exists", func(t *testing.T) {
		store := &memoryStore{admins: 1}
		created, err := EnsureAdmin(context.Background(), store, hasher, account, zerolog.Nop())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Empty(t, store.created)
	})

	t.Run("skips without credentials", func(t *testing.T) {
		store := &memoryStore{}
		created, err := EnsureAdmin(context.Background(), store, hasher, AdminAccount{}, zerolog.Nop())
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("skips taken email", func(t *testing.T) {
		store := &memoryStore{byEmail: map[string]*appModels.Faculty{account.Email: {}}}
		created, err := EnsureAdmin(context.Background(), store, hasher, account, zerolog.Nop())
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("propagates count failure", func(t *testing.T) {
		store := &memoryStore{err: errors.New("timeout")}
		_, err := EnsureAdmin(context.Background(), store, hasher, account, zerolog.Nop())
		assert.Error(t, err)
	})
}
