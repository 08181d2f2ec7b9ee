package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/refpage/refpage/internal/batch"
	"github.com/refpage/refpage/internal/config"
	"github.com/refpage/refpage/internal/logging"
)

var (
	renderTemplate        string
	renderOutput          string
	renderIncludeAbstract bool
	renderHTMLTemplate    string
	renderHTMLOutput      string
)

func init() {
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Markdown page template")
	renderCmd.Flags().StringVar(&renderOutput, "output", "", "Output directory for markdown pages (default \".\")")
	renderCmd.Flags().BoolVar(&renderIncludeAbstract, "include-abstract", false, "Expose abstract and download link to the template")
	renderCmd.Flags().StringVar(&renderHTMLTemplate, "html-template", "", "HTML listing template")
	renderCmd.Flags().StringVar(&renderHTMLOutput, "html-output", "", "HTML listing output file")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <path>...",
	Short: "Render one markdown page per reference",
	Long: `Render one markdown page per reference through a template.

Paths may be .bib or .ris files, or directories scanned (non-recursively)
for both. Files are processed in lexicographic order so repeated runs
produce identical output. Page filenames derive from year and title;
records mapping to the same name overwrite each other.

Examples:
  refpage render refs/ --template page.tmpl --output _publications
  refpage render a.bib b.ris --template page.tmpl --include-abstract
  refpage render refs/ --template page.tmpl \
      --html-template list.tmpl --html-output publications.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if renderTemplate != "" {
		cfg.Template = renderTemplate
	}
	if renderOutput != "" {
		cfg.OutputDir = renderOutput
	}
	if cmd.Flags().Changed("include-abstract") {
		cfg.IncludeAbstract = renderIncludeAbstract
	}
	if renderHTMLTemplate != "" {
		cfg.HTMLTemplate = renderHTMLTemplate
	}
	if renderHTMLOutput != "" {
		cfg.HTMLOutput = renderHTMLOutput
	}

	if cfg.Template == "" {
		exitWithError(ExitConfigError, "no page template: set --template, REFPAGE_TEMPLATE, or the config file")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	inputs, err := batch.ResolveInputs(args)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(inputs) == 0 {
		exitWithError(ExitError, "no .bib or .ris files found")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}

	log := logging.New(effectiveLogLevel(cfg))
	report, err := batch.Run(batch.Config{
		IncludeAbstract:  cfg.IncludeAbstract,
		TemplatePath:     cfg.Template,
		OutputDir:        cfg.OutputDir,
		HTMLTemplatePath: cfg.HTMLTemplate,
		HTMLOutput:       cfg.HTMLOutput,
	}, inputs, log)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	printReport(report)
	return nil
}

// loadConfig loads the YAML/env configuration, exiting on error.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// effectiveLogLevel picks the log level: flag over config.
func effectiveLogLevel(cfg *config.Config) string {
	if logLevel != "" {
		return logLevel
	}
	return cfg.LogLevel
}
