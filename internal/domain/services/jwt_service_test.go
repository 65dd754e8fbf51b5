package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "oksms-http-service", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, err := svc.GenerateToken(1, "admin")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.JWTSecretKey = "different-secret"
	otherSvc := NewJWTService(cfg)

	_, err = otherSvc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
