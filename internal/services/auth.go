package services

import (
	"context"
	"log"
	"strings"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/internal/metrics"
	"github.com/vishal1412/PropScan-sub000/internal/util"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// AuthService authenticates the configured admin user. There is no user
// table: the admin panel has a single credential pair supplied via config.
type AuthService struct {
	cfg *config.AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.AuthConfig) *AuthService {
	return &AuthService{cfg: cfg}
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Login checks the admin credentials and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	log.Printf("[AUTH] Login attempt for user: %s", username)

	if s.cfg.AdminPasswordHash == "" {
		log.Printf("[AUTH] Login failed: no admin credentials configured")
		metrics.RecordAuthAttempt(false)
		return nil, errors.New(errors.ErrCodeUnauthorized, "admin login is not configured")
	}

	if username != s.cfg.AdminUsername || !util.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		log.Printf("[AUTH] Login failed: invalid credentials for user '%s'", username)
		metrics.RecordAuthAttempt(false)
		return nil, errors.New(errors.ErrCodeUnauthorized, "incorrect username or password")
	}

	token, err := util.GenerateToken(username)
	if err != nil {
		log.Printf("[AUTH] Login failed: token generation error for user '%s': %v", username, err)
		metrics.RecordAuthAttempt(false)
		return nil, errors.Wrap(errors.ErrCodeInternalError, "failed to generate token", err)
	}

	log.Printf("[AUTH] Login successful for user: %s", username)
	metrics.RecordAuthAttempt(true)

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    username,
	}, nil
}

// Validate checks a bearer token and returns its claims.
func (s *AuthService) Validate(token string) (*util.Claims, error) {
	claims, err := util.ValidateToken(token)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnauthorized, "invalid or expired token")
	}
	return claims, nil
}
