// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extraction results in a SQLite database so
// signals can be looked up across modules and runs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sigex/pkg/types"
)

const dbFile = "signals.db"

// Store manages the signal catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.CatalogDir/signals.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	catalogDir := cfg.CatalogDir
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	if err := os.MkdirAll(catalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(catalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS modules (
			name TEXT PRIMARY KEY,
			source_file TEXT,
			extracted_at TEXT NOT NULL,
			port_count INTEGER NOT NULL,
			signal_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS signals (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			module TEXT NOT NULL REFERENCES modules(name) ON DELETE CASCADE,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			dimension TEXT,
			position INTEGER NOT NULL,
			UNIQUE(module, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_module ON signals(module)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_kind ON signals(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// StoreResult upserts one module's extraction into the catalog, replacing
// any signals from a previous run of the same module.
func (s *Store) StoreResult(ctx context.Context, result *types.ExtractionResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	extractedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO modules (name, source_file, extracted_at, port_count, signal_count)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			source_file = excluded.source_file,
			extracted_at = excluded.extracted_at,
			port_count = excluded.port_count,
			signal_count = excluded.signal_count`,
		result.Module, result.SourceFile, extractedAt, len(result.Ports), len(result.Signals),
	); err != nil {
		return fmt.Errorf("storing module %s: %w", result.Module, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM signals WHERE module = ?`, result.Module,
	); err != nil {
		return fmt.Errorf("clearing signals for %s: %w", result.Module, err)
	}

	for i, sig := range result.Signals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO signals (module, name, kind, dimension, position) VALUES (?, ?, ?, ?, ?)`,
			result.Module, sig.Name, string(sig.Kind), sig.Dimension, i,
		); err != nil {
			return fmt.Errorf("storing signal %s.%s: %w", result.Module, sig.Name, err)
		}
	}

	return tx.Commit()
}

// IngestSummary holds counts from a catalog ingestion run.
type IngestSummary struct {
	Stored int
	Failed int
}

// Total returns the number of files processed.
func (s IngestSummary) Total() int {
	return s.Stored + s.Failed
}

// IngestFiles reads extraction result YAML files and stores each in the
// catalog. One bad file does not stop the run. Progress lines go to w.
func (s *Store) IngestFiles(ctx context.Context, paths []string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		var result types.ExtractionResult
		if err := yaml.Unmarshal(data, &result); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", path, err)
			summary.Failed++
			continue
		}
		if result.Module == "" {
			fmt.Fprintf(w, "failed  %s: no module name in result\n", path)
			summary.Failed++
			continue
		}

		if err := s.StoreResult(ctx, &result); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "stored %s (%d signals)\n", result.Module, len(result.Signals))
		summary.Stored++
	}

	fmt.Fprintf(w, "\nstored: %d, failed: %d\n", summary.Stored, summary.Failed)
	return summary, nil
}

// ModuleEntry is one catalog row from ListModules.
type ModuleEntry struct {
	Name        string `json:"name"`
	SourceFile  string `json:"source_file,omitempty"`
	ExtractedAt string `json:"extracted_at"`
	PortCount   int    `json:"port_count"`
	SignalCount int    `json:"signal_count"`
}

// ListModules returns all cataloged modules in name order.
func (s *Store) ListModules(ctx context.Context) ([]ModuleEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, source_file, extracted_at, port_count, signal_count
		 FROM modules ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	var entries []ModuleEntry
	for rows.Next() {
		var e ModuleEntry
		if err := rows.Scan(&e.Name, &e.SourceFile, &e.ExtractedAt, &e.PortCount, &e.SignalCount); err != nil {
			return nil, fmt.Errorf("scanning module row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// QueryOptions filter a catalog signal query. Name matches with SQL LIKE
// semantics (use % wildcards).
type QueryOptions struct {
	Module string
	Kind   string
	Name   string
}

// IsEmpty reports whether no filter was given.
func (o QueryOptions) IsEmpty() bool {
	return o.Module == "" && o.Kind == "" && o.Name == ""
}

// QueryResult is one signal row returned by Query.
type QueryResult struct {
	Module    string `json:"module"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Dimension string `json:"dimension,omitempty"`
	Position  int    `json:"position"`
}

// Query returns signals matching the filters, in module then declaration
// order, capped at the configured maximum.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	var conds []string
	var args []any
	if opts.Module != "" {
		conds = append(conds, "module = ?")
		args = append(args, opts.Module)
	}
	if opts.Kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, opts.Kind)
	}
	if opts.Name != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, opts.Name)
	}

	query := `SELECT module, name, kind, dimension, position FROM signals`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY module, position LIMIT ?"
	args = append(args, s.maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying signals: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		if err := rows.Scan(&r.Module, &r.Name, &r.Kind, &r.Dimension, &r.Position); err != nil {
			return nil, fmt.Errorf("scanning signal row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
