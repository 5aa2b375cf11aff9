// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stoich/elements"
	"github.com/katalvlaran/stoich/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "db", "atoms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_SeedAndRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Table(ctx)
	require.ErrorIs(t, err, store.ErrEmptyTable)

	n, err := s.Seed(ctx, elements.PeriodicAtoms())
	require.NoError(t, err)
	assert.Equal(t, 118, n)

	atoms, err := s.Atoms(ctx)
	require.NoError(t, err)
	assert.Equal(t, elements.PeriodicAtoms(), atoms)

	table, err := s.Table(ctx)
	require.NoError(t, err)
	assert.True(t, table.Has("Og"))
	assert.Equal(t, 118, table.Len())
}

func TestStore_SeedIsUpsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Seed(ctx, []elements.Atom{{Symbol: "H", Number: 1}, {Symbol: "He", Number: 2}})
	require.NoError(t, err)
	_, err = s.Seed(ctx, []elements.Atom{{Symbol: "H", Number: 1}, {Symbol: "Li", Number: 3}})
	require.NoError(t, err)

	atoms, err := s.Atoms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []elements.Atom{
		{Symbol: "H", Number: 1}, {Symbol: "He", Number: 2}, {Symbol: "Li", Number: 3},
	}, atoms)
}

func TestStore_SeedRejectsInvalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Seed(ctx, []elements.Atom{{Symbol: "H", Number: 1}, {Symbol: "bad", Number: 2}})
	require.ErrorIs(t, err, elements.ErrInvalidSymbol)

	atoms, err := s.Atoms(ctx)
	require.NoError(t, err)
	assert.Empty(t, atoms, "nothing is written on validation failure")
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := store.Open(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrEmptyPath)

	s, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	assert.Equal(t, ":memory:", s.Path())
	require.NoError(t, s.Close())
}
