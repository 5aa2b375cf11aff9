// SPDX-License-Identifier: MIT

// Package config resolves runtime settings for the stoich CLI and server.
//
// Sources, lowest priority first: built-in defaults, a .env file, the
// process environment, explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/stoich/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	KeyPort            = "PORT"
	KeyFrontendURL     = "FRONTEND_URL"
	KeyDatabasePath    = "DATABASE_PATH"
	KeyElementsFile    = "ELEMENTS_FILE"
	KeyLogLevel        = "LOG_LEVEL"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Flag names bound to the keys above.
const (
	FlagPort            = "port"
	FlagFrontendURL     = "frontend-url"
	FlagDatabasePath    = "database-path"
	FlagElementsFile    = "elements-file"
	FlagLogLevel        = "log-level"
	FlagShutdownTimeout = "shutdown-timeout"
)

// Defaults.
const (
	DefaultPort            = 6942
	DefaultShutdownTimeout = 10 * time.Second
	DotEnvName             = ".env"
)

var (
	// ErrFrontendURLNotSet indicates that FRONTEND_URL is required but empty.
	ErrFrontendURLNotSet = errors.New("config: FRONTEND_URL is not set")

	// ErrInvalidPort indicates a port outside 1..65535.
	ErrInvalidPort = errors.New("config: invalid port")

	// ErrInvalidTimeout indicates a non-positive shutdown timeout.
	ErrInvalidTimeout = errors.New("config: invalid shutdown timeout")
)

var flagKeys = map[string]string{
	FlagPort:            KeyPort,
	FlagFrontendURL:     KeyFrontendURL,
	FlagDatabasePath:    KeyDatabasePath,
	FlagElementsFile:    KeyElementsFile,
	FlagLogLevel:        KeyLogLevel,
	FlagShutdownTimeout: KeyShutdownTimeout,
}

// Config is the resolved configuration.
type Config struct {
	Port            int
	FrontendURL     string
	DatabasePath    string
	ElementsFile    string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address ":<port>".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks port, log level and shutdown timeout.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.ShutdownTimeout)
	}

	return nil
}

// RequireFrontendURL fails with ErrFrontendURLNotSet when FrontendURL is empty.
func (c *Config) RequireFrontendURL() error {
	if c.FrontendURL == "" {
		return ErrFrontendURLNotSet
	}

	return nil
}

// FindDotEnv walks from start up to the filesystem root and returns the
// first regular file named .env.
func FindDotEnv(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, DotEnvName)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load merges defaults, the dotenv file (skipped when empty), the process
// environment and the changed flags of fs (nil allowed). Only flags whose
// names appear in the Flag* constants are bound.
func Load(fs *pflag.FlagSet, dotenv string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyFrontendURL, "")
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeyElementsFile, "")
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyShutdownTimeout, DefaultShutdownTimeout)

	if dotenv != "" {
		v.SetConfigFile(dotenv)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", dotenv, err)
		}
	}
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	return &Config{
		Port:            v.GetInt(KeyPort),
		FrontendURL:     v.GetString(KeyFrontendURL),
		DatabasePath:    v.GetString(KeyDatabasePath),
		ElementsFile:    v.GetString(KeyElementsFile),
		LogLevel:        v.GetString(KeyLogLevel),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
	}, nil
}
