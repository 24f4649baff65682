package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at a fresh directory and clears TADA_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"TADA_API_BASE_URL", "TADA_RATE_LIMIT", "TADA_RATE_BURST", "TADA_OWNER_ID",
		"TADA_IN_FLIGHT_POLICY", "TADA_LOG_LEVEL", "TADA_LOG_FILE", "TADA_THEME",
		"TADA_USE_KEYRING", "TADA_CREDENTIALS_FILE",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL: got %q, want %q", cfg.APIBaseURL, DefaultAPIBaseURL)
	}
	if cfg.OwnerID != DefaultOwnerID {
		t.Errorf("OwnerID: got %d, want %d", cfg.OwnerID, DefaultOwnerID)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("RateLimit: got %v, want 0", cfg.RateLimit)
	}
	if cfg.InFlightPolicy != DefaultInFlightPolicy {
		t.Errorf("InFlightPolicy: got %q, want %q", cfg.InFlightPolicy, DefaultInFlightPolicy)
	}
	if !cfg.UseKeyring {
		t.Error("UseKeyring: got false, want true")
	}
	if want := filepath.Join(home, ".tada", "tada.log"); cfg.LogFile != want {
		t.Errorf("LogFile: got %q, want %q", cfg.LogFile, want)
	}
	if want := filepath.Join(home, ".tada", "credentials.json"); cfg.CredentialsFile != want {
		t.Errorf("CredentialsFile: got %q, want %q", cfg.CredentialsFile, want)
	}
}

func TestLoadUserFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".tada", "config.toml"), `
api_base_url = "http://localhost:3000"
owner_id = 5
in_flight_policy = "dedupe"
rate_limit = 2.5
use_keyring = false
log_file = "~/logs/tada.log"
`)

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Errorf("APIBaseURL: got %q", cfg.APIBaseURL)
	}
	if cfg.OwnerID != 5 {
		t.Errorf("OwnerID: got %d, want 5", cfg.OwnerID)
	}
	if cfg.InFlightPolicy != "dedupe" {
		t.Errorf("InFlightPolicy: got %q, want dedupe", cfg.InFlightPolicy)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("RateLimit: got %v, want 2.5", cfg.RateLimit)
	}
	if cfg.UseKeyring {
		t.Error("UseKeyring: got true, want false")
	}
	if want := filepath.Join(home, "logs", "tada.log"); cfg.LogFile != want {
		t.Errorf("LogFile: got %q, want %q", cfg.LogFile, want)
	}
	// untouched keys keep their defaults
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	home := isolate(t)

	if _, err := Load(Overrides{ConfigFile: filepath.Join(home, "missing.toml")}); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	writeFile(t, path, `owner_id = "not a number"`)

	if _, err := Load(Overrides{ConfigFile: path}); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestPriority(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	writeFile(t, path, `
api_base_url = "http://file.example"
log_level = "warn"
theme = "neon"
owner_id = 3
`)
	t.Setenv("TADA_API_BASE_URL", "http://env.example")
	t.Setenv("TADA_LOG_LEVEL", "debug")
	t.Setenv("TADA_OWNER_ID", "9")

	cfg, err := Load(Overrides{ConfigFile: path, LogLevel: "error"})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if cfg.APIBaseURL != "http://env.example" {
		t.Errorf("APIBaseURL: env should beat file, got %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: flag should beat env, got %q", cfg.LogLevel)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme: file value expected, got %q", cfg.Theme)
	}
	if cfg.OwnerID != 9 {
		t.Errorf("OwnerID: env value expected, got %d", cfg.OwnerID)
	}
}

func TestValidate(t *testing.T) {
	type testCase struct {
		Name   string
		Mutate func(c *Config)
		Valid  bool
	}

	testCases := []testCase{
		{Name: "defaults", Mutate: func(c *Config) {}, Valid: true},
		{Name: "ftp url", Mutate: func(c *Config) { c.APIBaseURL = "ftp://example.com" }},
		{Name: "no host", Mutate: func(c *Config) { c.APIBaseURL = "http://" }},
		{Name: "negative rate", Mutate: func(c *Config) { c.RateLimit = -1 }},
		{Name: "zero burst", Mutate: func(c *Config) { c.RateBurst = 0 }},
		{Name: "unknown policy", Mutate: func(c *Config) { c.InFlightPolicy = "later" }},
		{Name: "dedupe policy", Mutate: func(c *Config) { c.InFlightPolicy = "dedupe" }, Valid: true},
		{Name: "unknown level", Mutate: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg, t.TempDir())
			tc.Mutate(cfg)

			err := cfg.Validate()
			if tc.Valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.Valid && err == nil {
				t.Error("expected an error")
			}
		})
	}
}
