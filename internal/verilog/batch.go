// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/sigex/internal/report"
	"github.com/pdiddy/sigex/pkg/types"
)

// defaultExtensions are the source suffixes scanned when a directory is
// given and the config does not override them.
var defaultExtensions = []string{".v", ".sv"}

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Failed    int
}

// Total returns the number of files processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Failed
}

// HasFailures reports whether any files failed extraction.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractFile reads one source file, extracts its internal signals, and
// writes the configured result files. It returns the result and the paths
// written.
func ExtractFile(path string, cfg types.ExtractConfig) (*types.ExtractionResult, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Extract(string(data), Options{Strict: cfg.Strict})
	if err != nil {
		return nil, nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	result.SourceFile = path

	written, err := report.Write(result, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("writing results for %s: %w", path, err)
	}
	return result, written, nil
}

// ExtractAll processes files and directories. Each file's extraction is
// independent; one failure does not stop the batch. Progress lines go to w.
func ExtractAll(inputs []string, cfg types.ExtractConfig, w io.Writer) (BatchSummary, error) {
	paths, err := collectSources(inputs, cfg.Extensions)
	if err != nil {
		return BatchSummary{}, err
	}

	var summary BatchSummary
	for _, path := range paths {
		result, written, err := ExtractFile(path, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "extracted %s: module %s, %d internal signals -> %s\n",
			path, result.Module, len(result.Signals), strings.Join(written, ", "))
		summary.Extracted++
	}

	if summary.Total() > 1 {
		fmt.Fprintf(w, "\nextracted: %d, failed: %d\n", summary.Extracted, summary.Failed)
	}
	return summary, nil
}

// collectSources expands directory inputs into their matching source files.
// Files named explicitly are taken regardless of extension.
func collectSources(inputs []string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = defaultExtensions
	}

	var paths []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("locating %s: %w", input, err)
		}
		if !info.IsDir() {
			paths = append(paths, input)
			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", input, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			for _, ext := range exts {
				if strings.HasSuffix(entry.Name(), ext) {
					paths = append(paths, filepath.Join(input, entry.Name()))
					break
				}
			}
		}
	}
	return paths, nil
}
