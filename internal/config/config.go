// Package config loads contacts settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rcliao/contacts/internal/store"
)

// Error policies applied when a console command fails.
const (
	OnErrorContinue = "continue"
	OnErrorAbort    = "abort"
)

// Config keys.
const (
	KeyBackend   = "storage.backend"
	KeyPath      = "storage.path"
	KeyOnError   = "on_error"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// EnvPrefix prefixes environment overrides, e.g. CONTACTS_STORAGE_BACKEND.
const EnvPrefix = "CONTACTS"

// DefaultConfigFile is read from the working directory when no config
// file is given. Its name must not match any backend's default data file.
const DefaultConfigFile = ".contacts.yaml"

// Config holds the resolved settings.
type Config struct {
	Backend   string
	Path      string
	OnError   string
	LogLevel  string
	LogFormat string
}

// Load resolves settings. configFile may be empty, in which case
// DefaultConfigFile in the working directory is read when present.
// flags may be nil; set flags override every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyBackend, store.BackendJSON)
	v.SetDefault(KeyOnError, OnErrorContinue)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configFile = DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Backend:   strings.ToLower(v.GetString(KeyBackend)),
		Path:      v.GetString(KeyPath),
		OnError:   strings.ToLower(v.GetString(KeyOnError)),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if cfg.Path == "" {
		cfg.Path = store.DefaultPath(cfg.Backend)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	KeyBackend:  "storage",
	KeyPath:     "file",
	KeyOnError:  "on-error",
	KeyLogLevel: "log-level",
}

// Validate rejects unknown backends, error policies and log formats.
func (c *Config) Validate() error {
	if !slices.Contains(store.Backends, c.Backend) {
		return fmt.Errorf("invalid storage backend %q (valid: %s)", c.Backend, strings.Join(store.Backends, ", "))
	}
	if c.OnError != OnErrorContinue && c.OnError != OnErrorAbort {
		return fmt.Errorf("invalid on_error %q (valid: continue, abort)", c.OnError)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q (valid: console, json)", c.LogFormat)
	}
	return nil
}
