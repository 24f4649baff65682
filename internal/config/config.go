// Package config loads tada settings.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Default values.
const (
	DefaultAPIBaseURL     = "https://jsonplaceholder.typicode.com"
	DefaultOwnerID        = 1
	DefaultLogLevel       = "info"
	DefaultTheme          = "classic"
	DefaultRateBurst      = 1
	DefaultInFlightPolicy = "allow"

	dirName             = ".tada"
	configFileName      = "config.toml"
	logFileName         = "tada.log"
	credentialsFileName = "credentials.json"
)

// Config holds everything tada reads at startup.
type Config struct {
	// Remote API
	APIBaseURL string  `toml:"api_base_url" env:"API_BASE_URL"`
	RateLimit  float64 `toml:"rate_limit" env:"RATE_LIMIT"` // requests per second, 0 disables
	RateBurst  int     `toml:"rate_burst" env:"RATE_BURST"`

	// List behavior
	OwnerID        int    `toml:"owner_id" env:"OWNER_ID"`
	InFlightPolicy string `toml:"in_flight_policy" env:"IN_FLIGHT_POLICY"`

	// Logging
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
	LogFile  string `toml:"log_file" env:"LOG_FILE"`

	// Output
	Theme string `toml:"theme" env:"THEME"`

	// Credentials
	UseKeyring      bool   `toml:"use_keyring" env:"USE_KEYRING"`
	CredentialsFile string `toml:"credentials_file" env:"CREDENTIALS_FILE"`
}

// Dir returns ~/.tada.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "home")
	}
	return filepath.Join(home, dirName), nil
}

func setDefaults(cfg *Config, dir string) {
	cfg.APIBaseURL = DefaultAPIBaseURL
	cfg.RateLimit = 0
	cfg.RateBurst = DefaultRateBurst
	cfg.OwnerID = DefaultOwnerID
	cfg.InFlightPolicy = DefaultInFlightPolicy
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFile = filepath.Join(dir, logFileName)
	cfg.Theme = DefaultTheme
	cfg.UseKeyring = true
	cfg.CredentialsFile = filepath.Join(dir, credentialsFileName)
}

// BaseURL parses APIBaseURL.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "api_base_url %q", c.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("api_base_url %q: scheme must be http or https", c.APIBaseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("api_base_url %q: missing host", c.APIBaseURL)
	}
	return u, nil
}

// Validate rejects settings the rest of the program cannot use.
func (c *Config) Validate() error {
	if _, err := c.BaseURL(); err != nil {
		return err
	}
	if c.RateLimit < 0 {
		return errors.Errorf("rate_limit must not be negative, got %v", c.RateLimit)
	}
	if c.RateBurst < 1 {
		return errors.Errorf("rate_burst must be at least 1, got %d", c.RateBurst)
	}
	switch strings.ToLower(c.InFlightPolicy) {
	case "allow", "concurrent", "dedupe":
	default:
		return errors.Errorf("in_flight_policy must be allow or dedupe, got %q", c.InFlightPolicy)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
