package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/gentlegains/internal/constants"
)

// Config holds client settings. The backend owns everything else.
type Config struct {
	// Base URL of the inference backend
	APIBaseURL string `yaml:"api_base_url"`
	// Chat session id, fixed per installation
	SessionID string `yaml:"session_id"`
	// SQLite path, PostgreSQL connection string without password, or "keyring"
	Database string `yaml:"database"`
	Debug    bool   `yaml:"debug"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: constants.DefaultAPIBaseURL,
		Database:   constants.DefaultConfigPath,
	}
}

// Load reads the YAML file at path, then applies .env and environment overrides.
// A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	// .env is optional; existing environment wins over it
	_ = godotenv.Load()

	cfg.applyEnvOverrides()
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return cfg, nil
}

// LoadFile reads only the YAML file over the defaults. Anything written back
// to disk must start from here so flag and environment overrides stay one-off.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ExpandHome(path))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

// Update applies fn to the file-backed settings and saves them
func Update(path string, fn func(*Config)) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	fn(cfg)
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(constants.EnvAPIURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(constants.EnvSessionID); v != "" {
		c.SessionID = v
	}
	if v := os.Getenv(constants.EnvDatabase); v != "" {
		c.Database = v
	}
	if v := os.Getenv(constants.EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// EnsureSessionID generates and persists a session id on first use.
// Only session_id is written; overrides held in c are not.
// Returns true when a new id was generated.
func (c *Config) EnsureSessionID(path string) (bool, error) {
	if c.SessionID != "" {
		return false, nil
	}
	id := uuid.New().String()
	c.SessionID = id
	if _, err := Update(path, func(f *Config) { f.SessionID = id }); err != nil {
		return true, err
	}
	return true, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("api_base_url must start with http:// or https://: %s", c.APIBaseURL)
	}
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("database is required")
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Dir returns the directory holding the config file, used for logs
func Dir(path string) string {
	return filepath.Dir(ExpandHome(path))
}
