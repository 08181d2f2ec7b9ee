package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refpage/refpage/internal/bibtex"
	"github.com/refpage/refpage/internal/normalize"
	"github.com/refpage/refpage/internal/record"
	"github.com/refpage/refpage/internal/ris"
)

var convertOutput string

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.ris>",
	Short: "Convert an RIS file to BibTeX",
	Long: `Convert a single RIS file to BibTeX.

RIS tags map to BibTeX fields through a fixed lookup table; tags with no
equivalent are dropped. Records without an ID tag get a generated
citation key.

Examples:
  refpage convert papers.ris
  refpage convert papers.ris -o papers.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}

	entries, warnings, err := ris.Parse(string(data))
	if err != nil {
		exitWithError(ExitError, "%v", &record.FormatError{Path: path, Format: record.FormatRIS, Err: err})
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", path, w)
	}

	var recs []record.Record
	for _, e := range entries {
		recs = append(recs, normalize.FromRIS(e))
	}

	// Converted BibTeX is always text output, never JSON.
	out := bibtex.FormatList(recs)
	if convertOutput == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(convertOutput, []byte(out), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", convertOutput, err)
	}
	return nil
}
