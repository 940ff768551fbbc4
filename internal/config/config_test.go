package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msomdec/bookshelf/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "STORAGE_BACKEND", "DATA_DIR", "DATABASE_PATH", "JWT_SECRET",
		"BCRYPT_COST", "COOKIE_SECURE", "AUTH_RATE_LIMIT", "AUTH_RATE_BURST",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Load looks for .env in the working directory.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageBackend != config.BackendFile || cfg.BcryptCost != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	clearEnv(t)

	if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}

	t.Setenv("JWT_SECRET", "short")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.StorageBackend != config.BackendSQLite || cfg.BcryptCost != 4 || cfg.CookieSecure {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric cost", "BCRYPT_COST", "abc"},
		{"cost too high", "BCRYPT_COST", "20"},
		{"unknown backend", "STORAGE_BACKEND", "postgres"},
		{"zero burst", "AUTH_RATE_BURST", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("JWT_SECRET", testSecret)
			t.Setenv(tc.key, tc.value)

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	content := "port: \"7000\"\ndata_dir: /srv/books\njwt_secret: " + testSecret + "\nbcrypt_cost: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7001")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/books" || cfg.BcryptCost != 6 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Port != "7001" {
		t.Fatalf("expected env to win over file, got port %s", cfg.Port)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	if err := os.WriteFile(".env", []byte("JWT_SECRET="+testSecret+"\nDATA_DIR=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "from-dotenv" {
		t.Fatalf("expected DATA_DIR from .env, got %q", cfg.DataDir)
	}
}

func TestLoadStorage_NoSecretNeeded(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("DATABASE_PATH", "books.db")

	cfg, err := config.LoadStorage()
	if err != nil {
		t.Fatalf("LoadStorage: %v", err)
	}
	if cfg.StorageBackend != config.BackendSQLite || cfg.DatabasePath != "books.db" {
		t.Fatalf("unexpected storage settings %+v", cfg)
	}
}

func TestLoadStorage_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "redis")

	if _, err := config.LoadStorage(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
