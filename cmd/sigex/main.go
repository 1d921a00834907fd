// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sigex CLI, a scanner that lists
// the internal signals of Verilog modules.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sigex CLI.
var rootCmd = &cobra.Command{
	Use:   "sigex",
	Short: "Extract the internal signals of Verilog modules",
	Long: `sigex scans a Verilog module source file and lists the wires and regs
declared inside the module body that are not part of its port list. Both
ANSI port lists (direction inline in the header) and classic port lists
(bare names in the header, directions declared in the body) are supported.

Results are written next to the invocation as
<module>_internal_signals.{txt,csv,yaml}; the catalog subcommand keeps a
queryable SQLite index of past extractions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sigex.yaml or ~/.config/sigex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sigex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sigex"))
		}
	}

	viper.SetEnvPrefix("SIGEX")
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", ".")
	viper.SetDefault("formats", []string{"txt", "csv"})
	viper.SetDefault("extensions", []string{".v", ".sv"})
	viper.SetDefault("catalog_dir", "catalog")
	viper.SetDefault("max_results", 50)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
