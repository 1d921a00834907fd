// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sigex/internal/catalog"
	"github.com/pdiddy/sigex/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the signal catalog (store, list, query)",
	Long: `Catalog maintains a SQLite index of extraction results so signals can
be looked up across modules and runs. Store ingests the YAML result files
produced by extract --formats yaml.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store <results...>",
	Short: "Ingest extraction result YAML files into the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.IngestFiles(context.Background(), args, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d result file(s) failed ingestion", summary.Failed)
	}
	return nil
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged modules",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListModules(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-7s  %-8s  %-20s  %s\n",
		"Module", "Ports", "Signals", "Extracted", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-24s  %-7d  %-8d  %-20s  %s\n",
			e.Name, e.PortCount, e.SignalCount, e.ExtractedAt, e.SourceFile)
	}
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query cataloged signals by module, kind, or name pattern",
	RunE:  runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	module, _ := cmd.Flags().GetString("module")
	kind, _ := cmd.Flags().GetString("kind")
	name, _ := cmd.Flags().GetString("name")

	opts := catalog.QueryOptions{Module: module, Kind: kind, Name: name}
	if opts.IsEmpty() {
		return fmt.Errorf("filter required: provide --module, --kind, or --name")
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No signals found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-24s  %-6s  %s\n", "Module", "Signal", "Kind", "Dimension")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-24s  %-24s  %-6s  %s\n", r.Module, r.Name, r.Kind, r.Dimension)
	}
	fmt.Fprintf(os.Stdout, "\n%d signals\n", len(results))
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = viper.GetString("catalog_dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("max_results")
	}

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "directory holding the catalog database (default: catalog)")
	catalogCmd.PersistentFlags().Int("max-results", 0, "maximum query results (0 = use default)")

	catalogListCmd.Flags().Bool("json", false, "output as JSON")

	catalogQueryCmd.Flags().String("module", "", "filter by module name")
	catalogQueryCmd.Flags().String("kind", "", "filter by signal kind: wire or reg")
	catalogQueryCmd.Flags().String("name", "", "filter by signal name (SQL LIKE pattern)")
	catalogQueryCmd.Flags().Bool("json", false, "output as JSON")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogQueryCmd)

	rootCmd.AddCommand(catalogCmd)
}
