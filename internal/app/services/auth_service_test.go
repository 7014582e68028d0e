package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	appAuth "github.com/harish176/placement-portal/internal/app/auth"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
)

type authFixture struct {
	svc      *AuthService
	students *mockStudentStore
	faculty  *mockFacultyStore
	mailer   *mockMailer
	logins   *recordingObserver
	tokens   *pkgAuth.JWTService
	hasher   *pkgAuth.PasswordHasher
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		students: &mockStudentStore{},
		faculty:  &mockFacultyStore{},
		mailer:   &mockMailer{},
		logins:   &recordingObserver{},
		tokens: pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			AccessSecret:    "access-secret",
			RefreshSecret:   "refresh-secret",
			AccessTokenExp:  7 * 24 * time.Hour,
			RefreshTokenExp: 30 * 24 * time.Hour,
		}),
		hasher: pkgAuth.NewPasswordHasher(bcrypt.MinCost),
	}
	f.svc = NewAuthService(f.students, f.faculty, f.tokens, f.hasher, f.mailer, f.logins, zerolog.Nop())
	return f
}

func (f *authFixture) hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := f.hasher.Hash(pw)
	require.NoError(t, err)
	return h
}

func (f *authFixture) student(t *testing.T, status models.StudentStatus, active bool) *models.Student {
	return &models.Student{
		ID:       primitive.NewObjectID(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: f.hash(t, "secret1"),
		Role:     models.RoleStudent,
		Status:   status,
		IsActive: active,
	}
}

func TestLoginStudentSuccess(t *testing.T) {
	f := newAuthFixture()
	s := f.student(t, models.StudentPending, true)
	f.students.On("GetByEmail", mock.Anything, "asha@example.com").Return(s, nil)
	f.students.On("TouchLastLogin", mock.Anything, s.ID.Hex(), mock.AnythingOfType("time.Time")).Return(nil)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@example.com", Password: "secret1", Role: models.RoleStudent})

	require.NoError(t, err)
	assert.Equal(t, s, resp.User)
	assert.Equal(t, int64(7*24*3600), resp.ExpiresIn)

	claims, err := f.tokens.VerifyAccess(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, s.ID.Hex(), claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Asha", claims.DisplayName)

	refresh, err := f.tokens.VerifyRefresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, s.ID.Hex(), refresh.UserID)

	assert.Equal(t, []bool{true}, f.logins.outcomes)
	f.students.AssertExpectations(t)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *authFixture)
		req     dto.LoginRequest
		message string
	}{
		{
			name: "unknown email",
			setup: func(t *testing.T, f *authFixture) {
				f.students.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("Student"))
			},
			req:     dto.LoginRequest{Email: "x@example.com", Password: "secret1", Role: models.RoleStudent},
			message: "Invalid email or password",
		},
		{
			name: "wrong password",
			setup: func(t *testing.T, f *authFixture) {
				f.students.On("GetByEmail", mock.Anything, mock.Anything).Return(f.student(t, models.StudentApproved, true), nil)
			},
			req:     dto.LoginRequest{Email: "asha@example.com", Password: "nope", Role: models.RoleStudent},
			message: "Invalid email or password",
		},
		{
			name: "admin logging in as faculty",
			setup: func(t *testing.T, f *authFixture) {
				f.faculty.On("GetByEmail", mock.Anything, mock.Anything).Return(&models.Faculty{
					ID: primitive.NewObjectID(), Password: f.hash(t, "secret1"), Role: models.RoleAdmin,
					Status: models.FacultyActive, IsActive: true,
				}, nil)
			},
			req:     dto.LoginRequest{Email: "admin@example.com", Password: "secret1", Role: models.RoleFaculty},
			message: "Invalid credentials for the selected role",
		},
		{
			name: "deactivated",
			setup: func(t *testing.T, f *authFixture) {
				f.students.On("GetByEmail", mock.Anything, mock.Anything).Return(f.student(t, models.StudentApproved, false), nil)
			},
			req:     dto.LoginRequest{Email: "asha@example.com", Password: "secret1", Role: models.RoleStudent},
			message: "Account is deactivated",
		},
		{
			name: "rejected student",
			setup: func(t *testing.T, f *authFixture) {
				f.students.On("GetByEmail", mock.Anything, mock.Anything).Return(f.student(t, models.StudentRejected, true), nil)
			},
			req:     dto.LoginRequest{Email: "asha@example.com", Password: "secret1", Role: models.RoleStudent},
			message: "Your registration has been rejected",
		},
		{
			name: "retired faculty",
			setup: func(t *testing.T, f *authFixture) {
				f.faculty.On("GetByEmail", mock.Anything, mock.Anything).Return(&models.Faculty{
					ID: primitive.NewObjectID(), Password: f.hash(t, "secret1"), Role: models.RoleFaculty,
					Status: models.FacultyRetired, IsActive: true,
				}, nil)
			},
			req:     dto.LoginRequest{Email: "f@example.com", Password: "secret1", Role: models.RoleFaculty},
			message: "Account is not active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setup(t, f)

			resp, err := f.svc.Login(context.Background(), &tt.req)

			assert.Nil(t, resp)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, []bool{false}, f.logins.outcomes)
			f.students.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLoginStorageErrorIsNotAuthFailure(t *testing.T) {
	f := newAuthFixture()
	f.faculty.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "x", Role: models.RoleAdmin})

	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}

func TestLoginSurvivesLastLoginFailure(t *testing.T) {
	f := newAuthFixture()
	s := f.student(t, models.StudentApproved, true)
	f.students.On("GetByEmail", mock.Anything, mock.Anything).Return(s, nil)
	f.students.On("TouchLastLogin", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("timeout"))

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{Email: s.Email, Password: "secret1", Role: models.RoleStudent})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestSignupCreatesPendingStudentAndNotifies(t *testing.T) {
	f := newAuthFixture()
	f.students.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).Return(nil)
	f.mailer.On("SendRegistrationReceived", "asha@example.com", "Asha").Return(errors.New("smtp down"))

	s, err := f.svc.Signup(context.Background(), &dto.SignupRequest{
		Name: " Asha ", Email: "ASHA@example.com", Phone: "9876543210", Password: "secret1",
		ScholarNumber: "21u0101", Branch: "CSE", Batch: 2025,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StudentPending, s.Status)
	assert.True(t, s.IsActive)
	assert.Equal(t, "21U0101", s.ScholarNumber)
	assert.NotEqual(t, "secret1", s.Password)
	assert.True(t, f.hasher.Compare(s.Password, "secret1"))
	f.mailer.AssertExpectations(t)
}

func TestSignupDuplicateIsReported(t *testing.T) {
	f := newAuthFixture()
	f.students.On("Create", mock.Anything, mock.Anything).Return(apperrors.NewDuplicateKeyError("email", nil))

	_, err := f.svc.Signup(context.Background(), &dto.SignupRequest{Name: "Asha", Email: "a@b.com", Password: "secret1"})

	assert.True(t, errors.Is(err, apperrors.ErrDuplicateKey))
	f.mailer.AssertNotCalled(t, "SendRegistrationReceived", mock.Anything, mock.Anything)
}

func TestRefreshFallsBackToFaculty(t *testing.T) {
	f := newAuthFixture()
	admin := &models.Faculty{ID: primitive.NewObjectID(), Name: "Root", Email: "root@example.com", Role: models.RoleAdmin, Status: models.FacultyActive, IsActive: true}
	pair, err := f.tokens.IssuePair(pkgAuth.Subject{ID: admin.ID.Hex(), Role: "admin"})
	require.NoError(t, err)

	f.students.On("GetByID", mock.Anything, admin.ID.Hex()).Return(nil, apperrors.NewNotFoundError("Student"))
	f.faculty.On("GetByID", mock.Anything, admin.ID.Hex()).Return(admin, nil)

	resp, err := f.svc.Refresh(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	claims, err := f.tokens.VerifyAccess(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshRejections(t *testing.T) {
	f := newAuthFixture()
	pair, err := f.tokens.IssuePair(pkgAuth.Subject{ID: primitive.NewObjectID().Hex(), Role: "student"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), pair.AccessToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized), "access token must not refresh")

	f.students.On("GetByID", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("Student"))
	f.faculty.On("GetByID", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("Faculty"))
	_, err = f.svc.Refresh(context.Background(), pair.RefreshToken)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture()
	s := f.student(t, models.StudentApproved, true)
	id := &appAuth.Identity{ID: s.ID.Hex(), Role: models.RoleStudent}
	f.students.On("GetByID", mock.Anything, s.ID.Hex()).Return(s, nil)

	err := f.svc.ChangePassword(context.Background(), id, &dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "currentPassword")

	var stored string
	f.students.On("UpdatePassword", mock.Anything, s.ID.Hex(), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil)

	require.NoError(t, f.svc.ChangePassword(context.Background(), id, &dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "newpass"}))
	assert.True(t, f.hasher.Compare(stored, "newpass"))
}

func TestLoadAccountPicksCollectionByRole(t *testing.T) {
	f := newAuthFixture()
	fac := &models.Faculty{ID: primitive.NewObjectID(), Role: models.RoleAdmin, IsActive: true}
	f.faculty.On("GetByID", mock.Anything, fac.ID.Hex()).Return(fac, nil)

	acc, err := f.svc.LoadAccount(context.Background(), fac.ID.Hex(), models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, acc.Role)
	f.students.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
