package auth

import (
	"testing"
	"time"

	"finsight/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString := signedToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, testSecret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	tokenString := signedToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = jwtService.ValidateToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	tokenString := signedToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = jwtService.ValidateToken(tokenString, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNonHMACTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	// An unsigned token must never validate, whatever its claims say.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(unsigned, testSecret)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token", testSecret)
	assert.Error(t, err)
}

func TestJWTService_EmptySecretConfig(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
