package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DeploymentMode controls whether write operations are allowed.
type DeploymentMode string

const (
	ModeReadWrite DeploymentMode = "read-write"
	ModeReadOnly  DeploymentMode = "read-only"
)

// Storage driver names.
const (
	DriverFile     = "file"
	DriverDatabase = "database"
	DriverStatic   = "static"
)

// Config holds application configuration
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
	CORS    CORSConfig
	Email   EmailConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
	Mode    DeploymentMode
}

// StorageConfig holds record store configuration
type StorageConfig struct {
	// Driver selects the record store backend: file, database or static.
	Driver string
	// DataDir is the collection directory for the file driver.
	DataDir string
	// SnapshotDir is the pre-published snapshot directory for the static driver.
	SnapshotDir string
	Database    DatabaseConfig
}

// DatabaseConfig holds database configuration for the database driver
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds admin authentication configuration
type AuthConfig struct {
	SecretKey          string
	TokenExpiryMinutes int
	AdminUsername      string
	// AdminPasswordHash is a bcrypt hash; generate one with cmd/create_admin.
	AdminPasswordHash string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// EmailConfig holds email notification configuration
type EmailConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

var globalConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "PropScan API"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "8000"),
			Host:    getEnv("HOST", "0.0.0.0"),
			Mode:    DeploymentMode(getEnv("DEPLOYMENT_MODE", string(ModeReadWrite))),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", DriverFile),
			DataDir:     getEnv("DATA_DIR", "./data"),
			SnapshotDir: getEnv("SNAPSHOT_DIR", "./snapshots"),
			Database: DatabaseConfig{
				URL: getEnv("DATABASE_URL", "sqlite:///./propscan.db"),
			},
		},
		Auth: AuthConfig{
			SecretKey:          getEnv("SECRET_KEY", "your-secret-key-change-in-production"),
			TokenExpiryMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
			AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_HOSTS", []string{"*"}),
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
			AllowedHeaders: []string{"*"},
			MaxAge:         86400,
		},
		Email: EmailConfig{
			Enabled:    getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			FromEmail:  getEnv("EMAIL_FROM", "noreply@propscan.in"),
			FromName:   getEnv("EMAIL_FROM_NAME", "PropScan"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@propscan.in"),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	globalConfig = config
	return config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.App.Mode != ModeReadWrite && cfg.App.Mode != ModeReadOnly {
		return fmt.Errorf("DEPLOYMENT_MODE must be %q or %q", ModeReadWrite, ModeReadOnly)
	}
	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.DataDir == "" {
			return fmt.Errorf("DATA_DIR must be set for the file storage driver")
		}
	case DriverDatabase:
		if cfg.Storage.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the database storage driver")
		}
	case DriverStatic:
		if cfg.Storage.SnapshotDir == "" {
			return fmt.Errorf("SNAPSHOT_DIR must be set for the static storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.Auth.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY must be set")
	}
	if cfg.Auth.TokenExpiryMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be greater than 0")
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		// Load default config if not loaded
		config, _ := Load()
		return config
	}
	return globalConfig
}

// Set replaces the global configuration. Intended for tests.
func Set(cfg *Config) {
	globalConfig = cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgresql://") || strings.HasPrefix(c.URL, "postgres://")
}

// GetPostgresDSN converts a postgres:// URL to the key=value DSN format.
// URLs already in DSN format are returned unchanged.
func (c *DatabaseConfig) GetPostgresDSN() string {
	url := c.URL
	if strings.Contains(url, " ") {
		return url
	}

	var rest string
	switch {
	case strings.HasPrefix(url, "postgresql://"):
		rest = strings.TrimPrefix(url, "postgresql://")
	case strings.HasPrefix(url, "postgres://"):
		rest = strings.TrimPrefix(url, "postgres://")
	default:
		return url
	}

	// user:pass@host:port/db?params
	var user, password string
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		credentials := rest[:at]
		rest = rest[at+1:]
		if colon := strings.Index(credentials, ":"); colon >= 0 {
			user = credentials[:colon]
			password = credentials[colon+1:]
		} else {
			user = credentials
		}
	}

	host, port, dbname, sslmode := "localhost", "5432", "postgres", "disable"
	hostPort := rest
	if slash := strings.Index(rest, "/"); slash >= 0 {
		hostPort = rest[:slash]
		dbAndParams := rest[slash+1:]
		if q := strings.Index(dbAndParams, "?"); q >= 0 {
			dbname = dbAndParams[:q]
			for _, param := range strings.Split(dbAndParams[q+1:], "&") {
				if strings.HasPrefix(param, "sslmode=") {
					sslmode = strings.TrimPrefix(param, "sslmode=")
				}
			}
		} else {
			dbname = dbAndParams
		}
	}
	if colon := strings.Index(hostPort, ":"); colon >= 0 {
		host = hostPort[:colon]
		port = hostPort[colon+1:]
	} else if hostPort != "" {
		host = hostPort
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if password != "" {
		dsn += " password=" + password
	}
	return dsn
}

// GetSQLitePath extracts the SQLite database path from the URL
func (c *DatabaseConfig) GetSQLitePath() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}
