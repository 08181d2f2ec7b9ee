// Package main provides the refpage CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

var (
	logLevel   string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refpage",
	Short: "Generate publication pages from reference files",
	Long: `refpage converts BibTeX and RIS reference files into templated
markdown publication pages and aggregate outputs.

Core features:
  - One markdown page per reference, rendered through a user template
  - Optional HTML listing of all references, newest first
  - Combined .bib / .ris files concatenated across a directory
  - RIS to BibTeX conversion

All commands output a JSON batch report by default; use --human for a
readable summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.Version = Version
}
