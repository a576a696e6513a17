package jwt

import (
	"testing"
	"time"

	"dental-clinic-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()

	token, tokenID, err := s.GenerateAccessToken(7, "admin@clinic.test", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@clinic.test", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken(7, "user@clinic.test", "USER")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	s := newTestService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})

	token, _, err := s.GenerateAccessToken(7, "user@clinic.test", "USER")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := newTestService()

	_, first, err := s.GenerateAccessToken(7, "user@clinic.test", "USER")
	require.NoError(t, err)
	_, second, err := s.GenerateAccessToken(7, "user@clinic.test", "USER")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
