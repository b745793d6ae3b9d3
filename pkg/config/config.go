// Package config loads springclean's layered configuration: embedded
// defaults, then the user's TOML file from the XDG config dir, then
// SPRINGCLEAN_* environment variables. Later layers win.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/springclean/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SPRINGCLEAN_BACKUP_ENABLED=false.
const EnvPrefix = "SPRINGCLEAN_"

// Config is the effective springclean configuration.
type Config struct {
	Layout Layout `koanf:"layout" toml:"layout"`
	Backup Backup `koanf:"backup" toml:"backup"`
	Notify Notify `koanf:"notify" toml:"notify"`
	Output Output `koanf:"output" toml:"output"`
}

// Layout configures where the icon layout document lives.
type Layout struct {
	Path string `koanf:"path" toml:"path"`
}

// Backup configures pre-persist backups.
type Backup struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Dir     string `koanf:"dir" toml:"dir"`
}

// Notify configures the post-persist notification hook.
type Notify struct {
	Command string `koanf:"command" toml:"command"`
}

// Output configures terminal output behavior.
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// Load builds the effective configuration. configPath is the user
// config file; a missing file is not an error, only a skipped layer.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, if present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", configPath)
			}
		}
	}

	// 3. Environment overrides: SPRINGCLEAN_BACKUP_DIR -> backup.dir.
	// SPRINGCLEAN_LAYOUT is the bare layout-path variable handled by
	// pkg/paths; it would collide with the [layout] section here.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		if s == "SPRINGCLEAN_LAYOUT" {
			return ""
		}
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// MarshalTOML renders the effective configuration as TOML, used by
// genconfig --effective.
func (c *Config) MarshalTOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return data, nil
}
