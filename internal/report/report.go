// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes extraction results to their output files and formats
// the on-screen summary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sigex/pkg/types"
)

// baseName is the stem shared by all result files for a module.
const baseName = "_internal_signals"

// defaultFormats are written when the config does not select any.
var defaultFormats = []types.Format{types.FormatText, types.FormatCSV}

// Write writes the selected result files for one extraction into
// cfg.OutputDir, creating it if needed. It returns the paths written.
func Write(result *types.ExtractionResult, cfg types.ExtractConfig) ([]string, error) {
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	formats := cfg.Formats
	if len(formats) == 0 {
		formats = defaultFormats
	}

	var written []string
	for _, format := range formats {
		path := filepath.Join(outDir, result.Module+baseName+"."+string(format))
		var err error
		switch format {
		case types.FormatText:
			err = writeList(path, result)
		case types.FormatCSV:
			err = writeCSV(path, result)
		case types.FormatYAML:
			err = writeYAML(path, result)
		default:
			return nil, fmt.Errorf("unsupported format %q: use txt, csv, or yaml", format)
		}
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// writeList writes the signal names one per line, in declaration order.
func writeList(path string, result *types.ExtractionResult) error {
	var b strings.Builder
	for _, sig := range result.Signals {
		b.WriteString(sig.Name)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing signal list: %w", err)
	}
	return nil
}

// writeCSV writes name/dimension rows. The header matches the CSV produced
// by earlier revisions of this tool, so downstream scripts keep working.
func writeCSV(path string, result *types.ExtractionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Field Name", "Field Dimension"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, sig := range result.Signals {
		if err := w.Write([]string{sig.Name, sig.Dimension}); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return f.Close()
}

// writeYAML marshals the full result, ports included, for machine consumers
// (and for `sigex catalog store`).
func writeYAML(path string, result *types.ExtractionResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return nil
}

const summaryRule = "==========================================================================="

// Summary formats the counts block shown after a successful extraction.
func Summary(result *types.ExtractionResult) string {
	var b strings.Builder
	fmt.Fprintln(&b, summaryRule)
	fmt.Fprintf(&b, "\t%s Internal Signals Information\n", result.Module)
	fmt.Fprintf(&b, "\tTotal number of wires:            %d\n", result.CountKind(types.KindWire))
	fmt.Fprintf(&b, "\tTotal number of registers:        %d\n", result.CountKind(types.KindReg))
	fmt.Fprintf(&b, "\tTotal number of internal signals: %d\n", len(result.Signals))
	fmt.Fprint(&b, summaryRule)
	return b.String()
}
