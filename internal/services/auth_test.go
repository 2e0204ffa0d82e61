package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/internal/util"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

func newTestAuthConfig(t *testing.T) *config.AuthConfig {
	t.Helper()

	hash, err := util.HashPassword("s3cret-admin-pass")
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		SecretKey:          "0123456789abcdef0123456789abcdef",
		TokenExpiryMinutes: 30,
		AdminUsername:      "admin",
		AdminPasswordHash:  hash,
	}
	// Token signing reads the global configuration.
	config.Set(&config.Config{Auth: authCfg})
	return &authCfg
}

func TestAuthLogin(t *testing.T) {
	svc := NewAuthService(newTestAuthConfig(t))

	result, err := svc.Login(context.Background(), "admin", "s3cret-admin-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, "admin", result.Username)

	claims, err := svc.Validate(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestAuthLoginTrimsWhitespace(t *testing.T) {
	svc := NewAuthService(newTestAuthConfig(t))

	_, err := svc.Login(context.Background(), "  admin  ", " s3cret-admin-pass ")
	assert.NoError(t, err)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newTestAuthConfig(t))
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong-pass")
	assert.True(t, errors.IsUnauthorized(err))

	_, err = svc.Login(ctx, "root", "s3cret-admin-pass")
	assert.True(t, errors.IsUnauthorized(err))
}

func TestAuthLoginUnconfigured(t *testing.T) {
	authCfg := newTestAuthConfig(t)
	authCfg.AdminPasswordHash = ""
	svc := NewAuthService(authCfg)

	_, err := svc.Login(context.Background(), "admin", "anything")
	assert.True(t, errors.IsUnauthorized(err))
}

func TestAuthValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newTestAuthConfig(t))

	_, err := svc.Validate("not.a.token")
	assert.True(t, errors.IsUnauthorized(err))
}
