// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared by the extractor core, the
// report writers, the catalog, and the CLI surface.
package types

// Format identifies an output file format for extraction results.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ExtractConfig holds settings for the extraction stage.
type ExtractConfig struct {
	// OutputDir is the directory result files are written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Formats selects which result files to write (default: txt, csv).
	Formats []Format `json:"formats" yaml:"formats"`

	// Strict turns recognized-but-unsupported constructs (e.g. SystemVerilog
	// "logic" declarations) into errors instead of skipping them.
	Strict bool `json:"strict" yaml:"strict"`

	// Extensions lists the file suffixes scanned in batch mode
	// (default: .v, .sv).
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// CatalogConfig holds settings for the signal catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite database (default "catalog").
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
