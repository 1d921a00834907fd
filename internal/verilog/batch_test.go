// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sigex/pkg/types"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	src := writeSource(t, dir, "blinker.v",
		"module blinker(input clk, output led);\n  wire tick;\n  reg state;\nendmodule\n")

	cfg := types.ExtractConfig{OutputDir: outDir}
	result, written, err := ExtractFile(src, cfg)
	require.NoError(t, err)

	assert.Equal(t, "blinker", result.Module)
	assert.Equal(t, src, result.SourceFile)
	assert.Equal(t, []string{"tick", "state"}, result.Names())
	require.Len(t, written, 2) // default formats: txt, csv

	data, err := os.ReadFile(filepath.Join(outDir, "blinker_internal_signals.txt"))
	require.NoError(t, err)
	assert.Equal(t, "tick\nstate\n", string(data))
}

func TestExtractFileParseFailure(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "broken.v", "module broken(input a);\nwire b;\n")

	_, _, err := ExtractFile(src, types.ExtractConfig{OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedModule)
}

func TestExtractAll(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSource(t, srcDir, "one.v", "module one(); wire a; endmodule")
	writeSource(t, srcDir, "two.sv", "module two(); reg b; endmodule")
	writeSource(t, srcDir, "bad.v", "module bad(); wire c;") // no endmodule
	writeSource(t, srcDir, "notes.txt", "not a source file")

	var out strings.Builder
	summary, err := ExtractAll([]string{srcDir}, types.ExtractConfig{OutputDir: outDir}, &out)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Extracted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Total())
	assert.True(t, summary.HasFailures())

	assert.FileExists(t, filepath.Join(outDir, "one_internal_signals.txt"))
	assert.FileExists(t, filepath.Join(outDir, "two_internal_signals.txt"))
	assert.Contains(t, out.String(), "failed")
	assert.Contains(t, out.String(), "bad.v")
}

func TestExtractAllMissingInput(t *testing.T) {
	_, err := ExtractAll([]string{filepath.Join(t.TempDir(), "nope.v")},
		types.ExtractConfig{OutputDir: t.TempDir()}, &strings.Builder{})
	require.Error(t, err)
}

func TestCollectSourcesExplicitFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "design.verilog", "module d(); endmodule")

	paths, err := collectSources([]string{src}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{src}, paths)
}
