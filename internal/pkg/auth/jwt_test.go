package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenExp:  7 * 24 * time.Hour,
		RefreshTokenExp: 30 * 24 * time.Hour,
		Issuer:          "placement-portal",
	})
}

var testSubject = Subject{
	ID:          "65f1c0de9a1b2c3d4e5f6a7b",
	Email:       "riya@college.edu",
	Role:        "student",
	DisplayName: "Riya Sharma",
}

func TestIssuePairRoundTrip(t *testing.T) {
	svc := newTestService()

	pair, err := svc.IssuePair(testSubject)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7*24*60*60), pair.ExpiresIn)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testSubject.ID, access.UserID)
	assert.Equal(t, testSubject.Email, access.Email)
	assert.Equal(t, testSubject.Role, access.Role)
	assert.Equal(t, testSubject.DisplayName, access.DisplayName)
	assert.NotEmpty(t, access.ID)

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, access.UserID, refresh.UserID)
}

func TestRefreshTokenCarriesOnlyID(t *testing.T) {
	svc := newTestService()
	pair, err := svc.IssuePair(testSubject)
	require.NoError(t, err)

	parts := strings.Split(pair.RefreshToken, ".")
	require.Len(t, parts, 3)
	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), testSubject.Email)
	assert.NotContains(t, string(payload), "role")
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newTestService()
	pair, err := svc.IssuePair(testSubject)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		AccessSecret:    "someone-else",
		RefreshSecret:   "someone-else-refresh",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		Issuer:          "placement-portal",
	})
	foreign, err := other.IssuePair(testSubject)
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"

	tests := []struct {
		name   string
		verify func() error
	}{
		{"empty", func() error { _, err := svc.VerifyAccess(""); return err }},
		{"garbage", func() error { _, err := svc.VerifyAccess("not.a.jwt"); return err }},
		{"tampered signature", func() error { _, err := svc.VerifyAccess(tampered); return err }},
		{"wrong secret", func() error { _, err := svc.VerifyAccess(foreign.AccessToken); return err }},
		{"refresh used as access", func() error { _, err := svc.VerifyAccess(pair.RefreshToken); return err }},
		{"access used as refresh", func() error { _, err := svc.VerifyRefresh(pair.AccessToken); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.verify()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-31 * 24 * time.Hour) }

	pair, err := svc.IssuePair(testSubject)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestIssuePairRequiresSubjectID(t *testing.T) {
	_, err := newTestService().IssuePair(Subject{Email: "x@y.z"})
	assert.Error(t, err)
}

func TestExtractFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "", ok: false},
		{header: "   ", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer   ", ok: false},
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "abc.def.ghi", want: "abc.def.ghi", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := ExtractFromHeader(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, h.Compare(hash, "s3cret-pass"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "s3cret-pass"))
}
