package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appAuth "github.com/harish176/placement-portal/internal/app/auth"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
	"github.com/harish176/placement-portal/internal/pkg/email"
)

// Login failure messages. Unknown email and wrong password share one message.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgRoleMismatch       = "Invalid credentials for the selected role"
	msgDeactivated        = "Account is deactivated"
	msgRejected           = "Your registration has been rejected"
	msgNotActive          = "Account is not active"
	msgInvalidToken       = "Invalid or expired token"
	msgUserNotFound       = "User not found"
)

// AuthService handles authentication operations
type AuthService struct {
	students StudentStore
	faculty  FacultyStore
	tokens   *pkgAuth.JWTService
	hasher   *pkgAuth.PasswordHasher
	mailer   email.EmailService
	logins   LoginObserver
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService creates a new AuthService. logins may be nil.
func NewAuthService(
	students StudentStore,
	faculty FacultyStore,
	tokens *pkgAuth.JWTService,
	hasher *pkgAuth.PasswordHasher,
	mailer email.EmailService,
	logins LoginObserver,
	logger zerolog.Logger,
) *AuthService {
	if logins == nil {
		logins = noopLoginObserver{}
	}
	return &AuthService{
		students: students,
		faculty:  faculty,
		tokens:   tokens,
		hasher:   hasher,
		mailer:   mailer,
		logins:   logins,
		logger:   logger,
		now:      time.Now,
	}
}

// principal pairs the login view of an account with the sanitized record
// returned to the client.
type principal struct {
	account models.Account
	user    interface{}
}

// Login authenticates email and password against the collection that holds
// accounts of the requested role.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := s.findByEmail(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.loginFailed(req, msgInvalidCredentials)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Compare(p.account.PasswordHash, req.Password) {
		return nil, s.loginFailed(req, msgInvalidCredentials)
	}
	if p.account.Role != req.Role {
		return nil, s.loginFailed(req, msgRoleMismatch)
	}
	if err := eligible(p.account); err != nil {
		s.logins.ObserveLogin(string(req.Role), false)
		return nil, err
	}

	id := p.account.ID.Hex()
	if err := s.touchLastLogin(ctx, p.account.Role, id); err != nil {
		s.logger.Warn().Err(err).Str("userID", id).Msg("Failed to record last login")
	}

	resp, err := s.issue(p)
	if err != nil {
		return nil, err
	}
	s.logins.ObserveLogin(string(req.Role), true)
	s.logger.Info().Str("userID", id).Str("role", string(p.account.Role)).Msg("User logged in")
	return resp, nil
}

func (s *AuthService) loginFailed(req *dto.LoginRequest, message string) error {
	s.logins.ObserveLogin(string(req.Role), false)
	s.logger.Debug().Str("email", req.Email).Str("role", string(req.Role)).Msg(message)
	return apperrors.NewUnauthorizedError(message)
}

// Signup registers a student. The account starts pending approval.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.Student, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	student, err := req.ToModel(hash)
	if err != nil {
		return nil, err
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	if err := s.mailer.SendRegistrationReceived(student.Email, student.Name); err != nil {
		s.logger.Warn().Err(err).Str("email", student.Email).Msg("Failed to send registration email")
	}
	s.logger.Info().Str("studentID", student.ID.Hex()).Str("scholarNumber", student.ScholarNumber).Msg("Student registered")
	return student, nil
}

// Refresh trades a valid refresh token for a new pair. The account is
// reloaded so that deactivation takes effect on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(msgInvalidToken)
	}

	p, err := s.findByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return nil, apperrors.NewUnauthorizedError(msgUserNotFound)
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if err := eligible(p.account); err != nil {
		return nil, err
	}
	return s.issue(p)
}

// LoadAccount returns the stored account behind an access token. Role picks
// the collection; an unknown id is a not-found error.
func (s *AuthService) LoadAccount(ctx context.Context, id string, role models.Role) (*models.Account, error) {
	var acc models.Account
	if role == models.RoleStudent {
		student, err := s.students.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		acc = student.Account()
	} else {
		f, err := s.faculty.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		acc = f.Account()
	}
	return &acc, nil
}

// Profile returns the caller's own record.
func (s *AuthService) Profile(ctx context.Context, identity *appAuth.Identity) (interface{}, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	if identity.Role == models.RoleStudent {
		return s.students.GetByID(ctx, identity.ID)
	}
	return s.faculty.GetByID(ctx, identity.ID)
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, identity *appAuth.Identity, req *dto.ChangePasswordRequest) error {
	if identity == nil {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	acc, err := s.LoadAccount(ctx, identity.ID, identity.Role)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(acc.PasswordHash, req.CurrentPassword) {
		return apperrors.NewFieldError("currentPassword", "Current password is incorrect")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if identity.Role == models.RoleStudent {
		err = s.students.UpdatePassword(ctx, identity.ID, hash)
	} else {
		err = s.faculty.UpdatePassword(ctx, identity.ID, hash)
	}
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	s.logger.Info().Str("userID", identity.ID).Msg("Password changed")
	return nil
}

// findByEmail reads students for the student role and faculty otherwise.
func (s *AuthService) findByEmail(ctx context.Context, email string, role models.Role) (*principal, error) {
	if role == models.RoleStudent {
		student, err := s.students.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &principal{account: student.Account(), user: student}, nil
	}
	f, err := s.faculty.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &principal{account: f.Account(), user: f}, nil
}

// findByID looks in students first, then faculty. Refresh tokens carry no role.
func (s *AuthService) findByID(ctx context.Context, id string) (*principal, error) {
	student, err := s.students.GetByID(ctx, id)
	if err == nil {
		return &principal{account: student.Account(), user: student}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	f, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &principal{account: f.Account(), user: f}, nil
}

func (s *AuthService) touchLastLogin(ctx context.Context, role models.Role, id string) error {
	if role == models.RoleStudent {
		return s.students.TouchLastLogin(ctx, id, s.now().UTC())
	}
	return s.faculty.TouchLastLogin(ctx, id, s.now().UTC())
}

func (s *AuthService) issue(p *principal) (*dto.LoginResponse, error) {
	pair, err := s.tokens.IssuePair(pkgAuth.Subject{
		ID:          p.account.ID.Hex(),
		Email:       p.account.Email,
		Role:        string(p.account.Role),
		DisplayName: p.account.Name,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &dto.LoginResponse{
		User:         p.user,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// eligible rejects accounts that may not hold tokens. Pending students pass;
// the approval gate handles them per route.
func eligible(acc models.Account) error {
	if !acc.IsActive {
		return apperrors.NewUnauthorizedError(msgDeactivated)
	}
	switch acc.Role {
	case models.RoleStudent:
		if acc.Status == string(models.StudentRejected) {
			return apperrors.NewUnauthorizedError(msgRejected)
		}
	default:
		if acc.Status != "" && acc.Status != string(models.FacultyActive) {
			return apperrors.NewUnauthorizedError(msgNotActive)
		}
	}
	return nil
}

