package main

import (
	"github.com/spf13/cobra"

	"github.com/refpage/refpage/internal/batch"
	"github.com/refpage/refpage/internal/logging"
)

var (
	concatBib      string
	concatRIS      string
	concatAllToBib string
)

func init() {
	concatCmd.Flags().StringVar(&concatBib, "bib", "", "Combined BibTeX output (BibTeX sources only)")
	concatCmd.Flags().StringVar(&concatRIS, "ris", "", "Combined RIS output (RIS sources only)")
	concatCmd.Flags().StringVar(&concatAllToBib, "all-to-bib", "", "Combined BibTeX output converting RIS records too")
	rootCmd.AddCommand(concatCmd)
}

var concatCmd = &cobra.Command{
	Use:   "concat <dir>",
	Short: "Combine reference files into single outputs",
	Long: `Combine the reference files of a directory into single outputs.

Files are processed in lexicographic order and entries keep their source
order, so repeated runs produce byte-identical output. Entries are never
deduplicated; duplicates across files are preserved verbatim.

Examples:
  refpage concat refs/ --bib combined.bib
  refpage concat refs/ --bib combined.bib --ris combined.ris
  refpage concat refs/ --all-to-bib everything.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runConcat,
}

func runConcat(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if concatBib != "" {
		cfg.CombinedBib = concatBib
	}
	if concatRIS != "" {
		cfg.CombinedRIS = concatRIS
	}
	if concatAllToBib != "" {
		cfg.AllToBib = concatAllToBib
	}

	if cfg.CombinedBib == "" && cfg.CombinedRIS == "" && cfg.AllToBib == "" {
		exitWithError(ExitConfigError, "nothing to write: set --bib, --ris, or --all-to-bib")
	}

	inputs, err := batch.ResolveInputs(args)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(inputs) == 0 {
		exitWithError(ExitError, "no .bib or .ris files found")
	}

	log := logging.New(effectiveLogLevel(cfg))
	report, err := batch.Run(batch.Config{
		CombinedBib: cfg.CombinedBib,
		CombinedRIS: cfg.CombinedRIS,
		AllToBib:    cfg.AllToBib,
	}, inputs, log)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	printReport(report)
	return nil
}
