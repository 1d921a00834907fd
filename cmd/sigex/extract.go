// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sigex/internal/report"
	"github.com/pdiddy/sigex/internal/verilog"
	"github.com/pdiddy/sigex/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [paths...]",
	Short: "Extract internal signal names from Verilog module files",
	Long: `Extract scans Verilog module sources and writes, per module, the list
of internal wire/reg names to <module>_internal_signals.txt (one name per
line, in declaration order) plus the formats selected with --formats.

A single file can be given with --filename or as a positional argument;
directories are scanned for matching source files. Parse failures name the
failure kind and the offending line.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("filename")

	inputs := args
	if filename != "" {
		inputs = append([]string{filename}, inputs...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input given: use --filename or pass source paths")
	}

	cfg := extractConfig(cmd)

	// Single explicit file: full summary output, hard failure.
	if len(inputs) == 1 {
		info, err := os.Stat(inputs[0])
		if err != nil {
			return fmt.Errorf("locating %s: %w", inputs[0], err)
		}
		if !info.IsDir() {
			result, written, err := verilog.ExtractFile(inputs[0], cfg)
			if err != nil {
				return err
			}
			fmt.Println(report.Summary(result))
			fmt.Printf("The list of internal signals is in %s\n", strings.Join(written, ", "))
			return nil
		}
	}

	summary, err := verilog.ExtractAll(inputs, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", summary.Failed)
	}
	return nil
}

// extractConfig resolves extraction settings from flags, falling back to
// viper (config file and environment) for anything not set on the command
// line.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}

	formatNames, _ := cmd.Flags().GetStringSlice("formats")
	if len(formatNames) == 0 {
		formatNames = viper.GetStringSlice("formats")
	}
	formats := make([]types.Format, 0, len(formatNames))
	for _, name := range formatNames {
		formats = append(formats, types.Format(strings.TrimPrefix(name, ".")))
	}

	strict, _ := cmd.Flags().GetBool("strict")

	extensions, _ := cmd.Flags().GetStringSlice("extensions")
	if len(extensions) == 0 {
		extensions = viper.GetStringSlice("extensions")
	}

	return types.ExtractConfig{
		OutputDir:  outputDir,
		Formats:    formats,
		Strict:     strict,
		Extensions: extensions,
	}
}

func init() {
	extractCmd.Flags().String("filename", "", "path to the Verilog module file")
	extractCmd.Flags().String("output-dir", "", "directory result files are written to (default: working directory)")
	extractCmd.Flags().StringSlice("formats", nil, "result formats to write: txt, csv, yaml")
	extractCmd.Flags().Bool("strict", false, "fail on unsupported constructs instead of skipping them")
	extractCmd.Flags().StringSlice("extensions", nil, "source suffixes scanned in directories (default: .v, .sv)")

	rootCmd.AddCommand(extractCmd)
}
