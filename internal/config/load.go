package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TADA_"

// Overrides are root flag values. Empty fields are ignored.
type Overrides struct {
	ConfigFile string
	APIBaseURL string
	LogLevel   string
	Theme      string
}

// Load reads configuration in priority order:
// 1. Defaults
// 2. Config file (Overrides.ConfigFile, or ~/.tada/config.toml when present)
// 3. Environment variables (TADA_*)
// 4. Root flags
func Load(o Overrides) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	setDefaults(cfg, dir)

	path := o.ConfigFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, configFileName)
	}
	if err := loadConfigFile(cfg, expandPath(path), explicit); err != nil {
		return nil, errors.Wrapf(err, "loading config file %s", path)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}

	applyOverrides(cfg, o)

	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.CredentialsFile = expandPath(cfg.CredentialsFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile decodes TOML at path into cfg. A missing file is only an
// error when the user asked for it.
func loadConfigFile(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.WithStack(err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	return env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.APIBaseURL != "" {
		cfg.APIBaseURL = o.APIBaseURL
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
}
