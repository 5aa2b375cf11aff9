// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/stoich/config"
	"github.com/katalvlaran/stoich/logging"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key; viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.KeyPort, config.KeyFrontendURL, config.KeyDatabasePath,
		config.KeyElementsFile, config.KeyLogLevel, config.KeyShutdownTimeout,
	} {
		t.Setenv(k, "")
	}
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(config.FlagPort, 0, "")
	fs.String(config.FlagFrontendURL, "", "")
	fs.String(config.FlagLogLevel, "", "")
	fs.Duration(config.FlagShutdownTimeout, 0, "")

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, logging.DefaultLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.FrontendURL)
	assert.Equal(t, ":6942", cfg.Addr())
	require.NoError(t, cfg.Validate())
	assert.ErrorIs(t, cfg.RequireFrontendURL(), config.ErrFrontendURLNotSet)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(
		"PORT=7000\nFRONTEND_URL=http://file.example\nLOG_LEVEL=debug\nDATABASE_PATH=/tmp/atoms.db\n"), 0o600))

	// .env over defaults.
	cfg, err := config.Load(nil, dotenv)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "http://file.example", cfg.FrontendURL)
	assert.Equal(t, "/tmp/atoms.db", cfg.DatabasePath)

	// Environment over .env.
	t.Setenv(config.KeyPort, "7100")
	t.Setenv(config.KeyShutdownTimeout, "3s")
	cfg, err = config.Load(nil, dotenv)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	// Changed flags over environment; unchanged flags do not override.
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--port", "7200"}))
	cfg, err = config.Load(fs, dotenv)
	require.NoError(t, err)
	assert.Equal(t, 7200, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://file.example", cfg.FrontendURL)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(nil, filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := config.Config{Port: 80, LogLevel: "info", ShutdownTimeout: time.Second}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Port = 70000
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalidPort)

	bad = valid
	bad.LogLevel = "chatty"
	assert.ErrorIs(t, bad.Validate(), logging.ErrInvalidLevel)

	bad = valid
	bad.ShutdownTimeout = 0
	assert.ErrorIs(t, bad.Validate(), config.ErrInvalidTimeout)
}

func TestFindDotEnv(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	// A directory named .env is not a match.
	require.NoError(t, os.Mkdir(filepath.Join(root, "a", "b", config.DotEnvName), 0o755))
	want := filepath.Join(root, "a", config.DotEnvName)
	require.NoError(t, os.WriteFile(want, []byte("PORT=1\n"), 0o600))

	got, ok := config.FindDotEnv(deep)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
