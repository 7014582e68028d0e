package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT errors. An expired token is also an invalid token.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// JWTConfig holds the signing settings, built once from configuration at startup.
type JWTConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	Issuer          string
}

// Subject is the account a token pair is issued for.
type Subject struct {
	ID          string
	Email       string
	Role        string
	DisplayName string
}

// AccessClaims is the access token payload.
type AccessClaims struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	TokenType   string `json:"typ"`
	jwt.RegisteredClaims
}

// RefreshClaims is the refresh token payload; it only identifies the account.
type RefreshClaims struct {
	UserID    string `json:"id"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is returned by login and refresh. ExpiresIn is in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and verifies access/refresh tokens. It keeps no state
// between calls, so logout has nothing to revoke.
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config, now: time.Now}
}

// IssuePair signs a fresh access and refresh token for subject.
func (s *JWTService) IssuePair(subject Subject) (*TokenPair, error) {
	if subject.ID == "" {
		return nil, errors.New("cannot issue tokens without a subject id")
	}
	now := s.now()

	access := &AccessClaims{
		UserID:           subject.ID,
		Email:            subject.Email,
		Role:             subject.Role,
		DisplayName:      subject.DisplayName,
		TokenType:        tokenTypeAccess,
		RegisteredClaims: s.registered(subject.ID, now, s.config.AccessTokenExp),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString([]byte(s.config.AccessSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	refresh := &RefreshClaims{
		UserID:           subject.ID,
		TokenType:        tokenTypeRefresh,
		RegisteredClaims: s.registered(subject.ID, now, s.config.RefreshTokenExp),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refresh).SignedString([]byte(s.config.RefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.AccessTokenExp.Seconds()),
	}, nil
}

func (s *JWTService) registered(subjectID string, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.config.Issuer,
		Subject:   subjectID,
		ID:        uuid.NewString(),
	}
}

// VerifyAccess validates an access token and returns its claims.
func (s *JWTService) VerifyAccess(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(tokenString, claims, s.config.AccessSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *JWTService) VerifyRefresh(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, claims, s.config.RefreshSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTService) parse(tokenString string, claims jwt.Claims, secret string) error {
	if tokenString == "" {
		return ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ExtractFromHeader accepts "Bearer <token>" or a raw token. ok is false when
// no token is present.
func ExtractFromHeader(header string) (token string, ok bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		header = strings.TrimSpace(header[7:])
	} else if strings.EqualFold(header, "Bearer") {
		return "", false
	}

	if header == "" {
		return "", false
	}
	return header, true
}
