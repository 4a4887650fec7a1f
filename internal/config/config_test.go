package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/gentlegains/internal/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{constants.EnvAPIURL, constants.EnvSessionID, constants.EnvDatabase, constants.EnvDebug} {
		t.Setenv(k, "")
	}
	// keep godotenv from picking up a developer's .env
	t.Chdir(t.TempDir())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_base_url: http://coach.local:9000/\nsession_id: abc\ndatabase: /tmp/gg.db\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := &Config{APIBaseURL: "http://coach.local:9000", SessionID: "abc", Database: "/tmp/gg.db"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	t.Setenv(constants.EnvAPIURL, "https://api.example.com")
	t.Setenv(constants.EnvDebug, "true")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want env override true")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(constants.EnvSessionID)

	if err := os.WriteFile(".env", []byte(constants.EnvSessionID+"=from-dotenv\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(constants.EnvSessionID) })

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SessionID != "from-dotenv" {
		t.Errorf("SessionID = %q, want %q", cfg.SessionID, "from-dotenv")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_base_url: [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnsureSessionID(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	created, err := cfg.EnsureSessionID(path)
	if err != nil {
		t.Fatalf("EnsureSessionID() failed: %v", err)
	}
	if !created || cfg.SessionID == "" {
		t.Fatalf("EnsureSessionID() created=%v id=%q", created, cfg.SessionID)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if reloaded.SessionID != cfg.SessionID {
		t.Errorf("persisted SessionID = %q, want %q", reloaded.SessionID, cfg.SessionID)
	}

	created, err = reloaded.EnsureSessionID(path)
	if err != nil || created {
		t.Errorf("second EnsureSessionID() = %v, %v, want false, nil", created, err)
	}
}

func TestEnsureSessionIDKeepsOverridesOutOfFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_base_url: http://coach.local:9000\ndatabase: /data/gg.db\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(constants.EnvAPIURL, "http://temp-override:9999")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// as set by --db and --debug
	cfg.Database = "/tmp/one-off.db"
	cfg.Debug = true

	if _, err := cfg.EnsureSessionID(path); err != nil {
		t.Fatalf("EnsureSessionID() failed: %v", err)
	}

	t.Setenv(constants.EnvAPIURL, "")
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := &Config{APIBaseURL: "http://coach.local:9000", SessionID: cfg.SessionID, Database: "/data/gg.db"}
	if diff := cmp.Diff(want, reloaded); diff != "" {
		t.Errorf("persisted config mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session_id: abc\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(constants.EnvDatabase, "/tmp/env.db")

	got, err := Update(path, func(c *Config) { c.Debug = true })
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	want := &Config{APIBaseURL: constants.DefaultAPIBaseURL, SessionID: "abc", Database: constants.DefaultConfigPath, Debug: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", *DefaultConfig(), ""},
		{"missing url", Config{Database: "x.db"}, "api_base_url is required"},
		{"bad scheme", Config{APIBaseURL: "ftp://x", Database: "x.db"}, "must start with"},
		{"missing database", Config{APIBaseURL: "http://x"}, "database is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x/y.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/y.db"); got != "/abs/y.db" {
		t.Errorf("ExpandHome() changed absolute path: %q", got)
	}
}
