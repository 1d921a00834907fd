// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sigex/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func fifoResult() *types.ExtractionResult {
	return &types.ExtractionResult{
		Module:     "fifo",
		SourceFile: "rtl/fifo.v",
		Ports:      []string{"clk", "rst_n", "din", "dout"},
		Signals: []types.Signal{
			{Name: "wr_ptr", Kind: types.KindReg, Dimension: "[3:0]"},
			{Name: "rd_ptr", Kind: types.KindReg, Dimension: "[3:0]"},
			{Name: "full", Kind: types.KindWire},
		},
	}
}

func TestStoreAndQuery(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.StoreResult(ctx, fifoResult()))

	results, err := store.Query(ctx, QueryOptions{Module: "fifo"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Declaration order survives storage.
	assert.Equal(t, "wr_ptr", results[0].Name)
	assert.Equal(t, "rd_ptr", results[1].Name)
	assert.Equal(t, "full", results[2].Name)
	assert.Equal(t, "[3:0]", results[0].Dimension)

	regs, err := store.Query(ctx, QueryOptions{Module: "fifo", Kind: "reg"})
	require.NoError(t, err)
	assert.Len(t, regs, 2)

	ptrs, err := store.Query(ctx, QueryOptions{Name: "%_ptr"})
	require.NoError(t, err)
	assert.Len(t, ptrs, 2)
}

func TestStoreResultUpsertReplacesSignals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.StoreResult(ctx, fifoResult()))

	updated := fifoResult()
	updated.Signals = updated.Signals[:1]
	require.NoError(t, store.StoreResult(ctx, updated))

	results, err := store.Query(ctx, QueryOptions{Module: "fifo"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "wr_ptr", results[0].Name)

	entries, err := store.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].SignalCount)
}

func TestListModules(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.StoreResult(ctx, fifoResult()))
	other := &types.ExtractionResult{Module: "alu", Ports: []string{"a", "b"}}
	require.NoError(t, store.StoreResult(ctx, other))

	entries, err := store.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alu", entries[0].Name)
	assert.Equal(t, "fifo", entries[1].Name)
	assert.Equal(t, 4, entries[1].PortCount)
	assert.Equal(t, "rtl/fifo.v", entries[1].SourceFile)
}

func TestQueryMaxResults(t *testing.T) {
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir(), MaxResults: 2})
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.StoreResult(ctx, fifoResult()))

	results, err := store.Query(ctx, QueryOptions{Module: "fifo"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIngestFiles(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	data, err := yaml.Marshal(fifoResult())
	require.NoError(t, err)
	good := filepath.Join(dir, "fifo_internal_signals.yaml")
	require.NoError(t, os.WriteFile(good, data, 0o644))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{unclosed"), 0o644))

	var out strings.Builder
	summary, err := store.IngestFiles(context.Background(), []string{good, bad}, &out)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Stored)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.Total())
	assert.Contains(t, out.String(), "stored fifo (3 signals)")

	entries, err := store.ListModules(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.False(t, QueryOptions{Module: "m"}.IsEmpty())
	assert.False(t, QueryOptions{Kind: "wire"}.IsEmpty())
	assert.False(t, QueryOptions{Name: "x%"}.IsEmpty())
}
