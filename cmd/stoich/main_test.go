// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stoich/config"
	"github.com/katalvlaran/stoich/logging"
	"github.com/katalvlaran/stoich/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with a clean environment and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		config.KeyPort, config.KeyFrontendURL, config.KeyDatabasePath,
		config.KeyElementsFile, config.KeyLogLevel, config.KeyShutdownTimeout,
	} {
		t.Setenv(k, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestBalanceCmd(t *testing.T) {
	out, err := run(t, "balance", "H2", "+", "O2", "=", "H2O")
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 -> 2H2O\n", out)

	out, err = run(t, "balance", "--json", "Fe + O2 -> Fe2O3")
	require.NoError(t, err)
	var got server.BalanceResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "4Fe + 3O2 -> 2Fe2O3", got.Balanced)

	_, err = run(t, "balance", "H2 + O2 = NaCl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contradiction")

	_, err = run(t, "balance", "--strict", "(2H2) + O2 = H2O")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misplaced_multiplier")
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "Fe2(SO4)3")
	require.NoError(t, err)
	assert.Equal(t, "Fe\t2\nS\t3\nO\t12\n", out)

	_, err = run(t, "parse", "Xx")
	assert.Error(t, err)
}

func TestAtomsSeedAndList(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "atoms.db")
	file := filepath.Join(dir, "atoms.yaml")
	require.NoError(t, os.WriteFile(file, []byte("atoms:\n  - {symbol: H, number: 1}\n  - {symbol: O, number: 8}\n"), 0o600))

	_, err := run(t, "atoms", "seed")
	assert.ErrorIs(t, err, errDatabasePathRequired)

	out, err := run(t, "--database-path", db, "--elements-file", file, "atoms", "seed")
	require.NoError(t, err)
	assert.Equal(t, "seeded 2 atoms into "+db+"\n", out)

	// The database now drives balancing and listing.
	out, err = run(t, "--database-path", db, "atoms", "list")
	require.NoError(t, err)
	assert.Equal(t, "1\tH\n8\tO\n", out)

	out, err = run(t, "--database-path", db, "balance", "H2 + O2 = H2O")
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 -> 2H2O\n", out)

	_, err = run(t, "--database-path", db, "parse", "NaCl")
	assert.Error(t, err, "Na is not in the seeded table")

	out, err = run(t, "--elements-file", file, "atoms", "list", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "symbol: O")
}

func TestAtomsList_EmptyDatabaseFallsBack(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	out, err := run(t, "--database-path", db, "atoms", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "118\tOg\n")
}

func TestServeCmd_RequiresFrontendURL(t *testing.T) {
	_, err := run(t, "serve")
	assert.ErrorIs(t, err, config.ErrFrontendURLNotSet)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "parse", "H2O")
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}
