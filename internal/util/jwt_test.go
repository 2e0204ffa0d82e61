package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/config"
)

func setTestAuthConfig(t *testing.T, expiryMinutes int) {
	t.Helper()
	config.Set(&config.Config{
		Auth: config.AuthConfig{
			SecretKey:          "0123456789abcdef0123456789abcdef",
			TokenExpiryMinutes: expiryMinutes,
		},
	})
}

func TestTokenRoundTrip(t *testing.T) {
	setTestAuthConfig(t, 30)

	token, err := GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	setTestAuthConfig(t, 30)

	token, err := GenerateToken("admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	setTestAuthConfig(t, 30)
	token, err := GenerateToken("admin")
	require.NoError(t, err)

	config.Set(&config.Config{
		Auth: config.AuthConfig{
			SecretKey:          "another-secret-key-entirely-here",
			TokenExpiryMinutes: 30,
		},
	})

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	setTestAuthConfig(t, -1)

	token, err := GenerateToken("admin")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
