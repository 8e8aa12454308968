package auth

import (
	"testing"
	"time"

	"clinic/config"
	"clinic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	doctorID := uuid.New()

	token, err := jwtService.GenerateToken(doctorID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, doctorID, claims.DoctorID)
	assert.Equal(t, doctorID.String(), claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTServiceWithTTL("test_access_secret_key_very_long_for_testing", -time.Minute)
	require.NoError(t, err)

	doctorID := uuid.New()
	token, err := jwtService.GenerateToken(doctorID)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTServiceWithTTL("issuer_secret_key_very_long_for_testing", time.Hour)
	require.NoError(t, err)
	verifier, err := NewJWTServiceWithTTL("verifier_secret_key_very_long_for_testing", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenDuration(t *testing.T) {
	jwtService, err := NewJWTServiceWithTTL("test_access_secret_key_very_long_for_testing", 30*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, jwtService.GetTokenDuration())
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestJWTConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = nil

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultTokenTTL, jwtService.GetTokenDuration())
}
