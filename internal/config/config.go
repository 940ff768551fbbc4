// Package config loads server settings from an optional .env file, an
// optional YAML file named by CONFIG_FILE, and the environment, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds every runtime setting.
type Config struct {
	Port           string  `yaml:"port"`
	StorageBackend string  `yaml:"storage_backend"`
	DataDir        string  `yaml:"data_dir"`
	DatabasePath   string  `yaml:"database_path"`
	JWTSecret      string  `yaml:"jwt_secret"`
	BcryptCost     int     `yaml:"bcrypt_cost"`
	CookieSecure   bool    `yaml:"cookie_secure"`
	AuthRateLimit  float64 `yaml:"auth_rate_limit"`
	AuthRateBurst  int     `yaml:"auth_rate_burst"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Port:           "8080",
		StorageBackend: BackendFile,
		DataDir:        "data",
		DatabasePath:   "bookshelf.db",
		BcryptCost:     10,
		CookieSecure:   true,
		AuthRateLimit:  1,
		AuthRateBurst:  5,
	}
}

// Load reads .env (if present), the YAML file named by CONFIG_FILE (if
// set), then environment variables, and validates the result.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStorage reads settings like Load but validates only what is needed to
// open the storage backend. Offline tools use it; they never sign tokens.
func LoadStorage() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateStorage(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.StorageBackend, "STORAGE_BACKEND")
	setString(&c.DataDir, "DATA_DIR")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.JWTSecret, "JWT_SECRET")

	// Secure cookies stay on unless explicitly disabled for local development.
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		c.CookieSecure = v != "false"
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		c.BcryptCost = parsed
	}
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
		}
		c.AuthRateLimit = parsed
	}
	if v := os.Getenv("AUTH_RATE_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AUTH_RATE_BURST: %w", err)
		}
		c.AuthRateBurst = parsed
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if err := c.ValidateStorage(); err != nil {
		return err
	}
	if c.AuthRateLimit < 0 || c.AuthRateBurst < 1 {
		return errors.New("AUTH_RATE_LIMIT must be >= 0 and AUTH_RATE_BURST >= 1")
	}
	return nil
}

// ValidateStorage checks the backend selection and its location.
func (c *Config) ValidateStorage() error {
	switch c.StorageBackend {
	case BackendFile:
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required for the file backend")
		}
	case BackendSQLite:
		if c.DatabasePath == "" {
			return errors.New("DATABASE_PATH is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendFile, BackendSQLite, c.StorageBackend)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
