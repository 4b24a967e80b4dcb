package auth

import (
	"testing"
	"time"

	"fleetplan/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{Enabled: true, Issuer: "fleetplan-test"}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.IssueToken("dispatcher", []string{"plans:write"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher", claims.Subject)
	assert.Equal(t, "fleetplan-test", claims.Issuer)
	assert.Equal(t, []string{"plans:write"}, claims.Scopes)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.IssueToken("dispatcher", nil, time.Hour)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.SecretKey.Access = "another_secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.IssueToken("dispatcher", nil, time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.Auth.Issuer = "someone-else"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.IssueToken("dispatcher", nil, time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTService_Malformed(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_IssueValidation(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = svc.IssueToken("", nil, time.Hour)
	assert.Error(t, err)

	_, err = svc.IssueToken("dispatcher", nil, 0)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = nil
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueToken("cli", nil, time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, defaultIssuer, claims.Issuer)
}
