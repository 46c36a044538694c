// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainerrors "github.com/curatorapp/curator-server/internal/errors"
)

// Config holds the application configuration.
type Config struct {
	App         AppConfig
	Logger      LoggerConfig
	Server      ServerConfig
	Data        DataConfig
	TMDB        TMDBConfig
	GoogleBooks GoogleBooksConfig
	Discogs     DiscogsConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name         string
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// DataConfig holds local persistence configuration.
type DataConfig struct {
	// Path is the directory for the Badger database (default: ~/Curator/data).
	Path string
}

// TMDBConfig holds movie catalog credentials.
type TMDBConfig struct {
	// APIKey is required for every TMDB request.
	APIKey string
}

// Validate reports a configuration error when the mandatory credential is
// missing. Checked before a client is ever constructed, so a missing key
// never reaches the network.
func (c TMDBConfig) Validate() error {
	if c.APIKey == "" {
		return domainerrors.Config("TMDB_API_KEY is not set")
	}
	return nil
}

// GoogleBooksConfig holds book catalog configuration.
type GoogleBooksConfig struct {
	// APIKey is optional; it raises the quota but is not required.
	APIKey string
}

// Validate always succeeds: Google Books works without a credential.
func (c GoogleBooksConfig) Validate() error {
	return nil
}

// DiscogsConfig holds album catalog credentials.
type DiscogsConfig struct {
	// Token is the personal access token, required for search.
	Token string
	// UserAgent is the client-identifying string Discogs requires on every
	// request.
	UserAgent string
}

// Validate reports a configuration error when either credential is missing.
func (c DiscogsConfig) Validate() error {
	if c.Token == "" {
		return domainerrors.Config("DISCOGS_TOKEN is not set")
	}
	if c.UserAgent == "" {
		return domainerrors.Config("DISCOGS_USER_AGENT is not set")
	}
	return nil
}

// Load loads configuration with precedence:
// 1. Environment variables.
// 2. .env file.
// 3. Default values (lowest priority).
func Load() (*Config, error) {
	return LoadWithEnvFile(".env")
}

// LoadWithEnvFile loads configuration, reading the given .env file first
// (silently ignored when absent).
func LoadWithEnvFile(envFile string) (*Config, error) {
	_ = loadEnvFile(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Name: getEnv("SERVER_NAME", "Curator Server"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Data: DataConfig{
			Path: getEnv("DATA_PATH", ""),
		},
		TMDB: TMDBConfig{
			APIKey: getEnv("TMDB_API_KEY", ""),
		},
		GoogleBooks: GoogleBooksConfig{
			APIKey: getEnv("GOOGLE_BOOKS_API_KEY", ""),
		},
		Discogs: DiscogsConfig{
			Token:     getEnv("DISCOGS_TOKEN", ""),
			UserAgent: getEnv("DISCOGS_USER_AGENT", ""),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = getDuration("SERVER_READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	// Expand and validate the data path.
	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
// Catalog credentials are deliberately not checked here: the server boots
// without them and the affected category reports a configuration error on
// use instead.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.Path == "" {
		return errors.New("data path cannot be empty after expansion")
	}

	return nil
}

// expandDataPath expands ~ and makes the path absolute, defaulting to
// ~/Curator/data.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Curator", "data")

	expanded, err := expandPath(c.Data.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Data.Path = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getEnv returns the environment variable value or the default.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getDuration parses a duration from an environment variable.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
