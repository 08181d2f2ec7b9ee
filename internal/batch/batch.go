// Package batch orchestrates one conversion run: parse and normalize each
// input file, render pages, and flush combined outputs.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/refpage/refpage/internal/aggregate"
	"github.com/refpage/refpage/internal/bibtex"
	"github.com/refpage/refpage/internal/normalize"
	"github.com/refpage/refpage/internal/record"
	"github.com/refpage/refpage/internal/render"
	"github.com/refpage/refpage/internal/ris"
)

// Config carries the resolved options for one batch invocation. It is
// built by the CLI layer and passed down explicitly; nothing here is
// process-global.
type Config struct {
	IncludeAbstract  bool
	TemplatePath     string // Markdown page template; empty disables page rendering
	OutputDir        string // Destination for per-record markdown pages
	HTMLTemplatePath string // Optional HTML listing template
	HTMLOutput       string // Optional HTML listing output path
	CombinedBib      string // Optional combined BibTeX output (BibTeX sources only)
	CombinedRIS      string // Optional combined RIS output (RIS sources only)
	AllToBib         string // Optional combined BibTeX output converting every record
}

// Run executes one batch over the resolved inputs. Per-file and per-entry
// problems are collected into the report; only output-write failures abort
// the batch, since partial combined output would be misleading.
func Run(cfg Config, inputs []Input, log *slog.Logger) (*Report, error) {
	report := &Report{}

	var pages *render.PageRenderer
	if cfg.TemplatePath != "" {
		var err error
		pages, err = render.NewPageRendererFromFile(cfg.TemplatePath, render.Options{IncludeAbstract: cfg.IncludeAbstract})
		if err != nil {
			return nil, err
		}
	}

	var listing *render.ListRenderer
	if cfg.HTMLTemplatePath != "" && cfg.HTMLOutput != "" {
		var err error
		listing, err = render.NewListRendererFromFile(cfg.HTMLTemplatePath, render.Options{IncludeAbstract: cfg.IncludeAbstract})
		if err != nil {
			return nil, err
		}
	}

	var bibBuf, risBuf, allBuf *aggregate.Buffer
	if cfg.CombinedBib != "" {
		bibBuf = aggregate.NewBuffer(record.FormatBibTeX)
	}
	if cfg.CombinedRIS != "" {
		risBuf = aggregate.NewBuffer(record.FormatRIS)
	}
	if cfg.AllToBib != "" {
		allBuf = aggregate.NewBuffer(record.FormatBibTeX)
	}

	var all []record.Record
	for _, input := range inputs {
		recs, err := parseFile(input, report)
		if err != nil {
			log.Warn("skipping file", "path", input.Path, "error", err)
			report.addProblem(err.Error())
			continue
		}
		report.FilesRead++
		report.Parsed += len(recs)
		log.Debug("parsed file", "path", input.Path, "records", len(recs))

		for _, rec := range recs {
			all = append(all, rec)

			if pages != nil {
				name, content, err := pages.Render(rec)
				if err != nil {
					log.Warn("skipping record", "key", rec.Key, "error", err)
					report.Skipped++
					report.addProblem(err.Error())
					continue
				}
				path := filepath.Join(cfg.OutputDir, name)
				if err := os.WriteFile(path, []byte(content), 0644); err != nil {
					return report, fmt.Errorf("writing page %s: %w", path, err)
				}
				report.Rendered++
			}

			if bibBuf != nil && rec.Source == record.FormatBibTeX {
				bibBuf.Add(rec)
			}
			if risBuf != nil && rec.Source == record.FormatRIS {
				risBuf.Add(rec)
			}
			if allBuf != nil {
				allBuf.Add(rec)
			}
		}
	}

	if bibBuf != nil {
		if err := bibBuf.Flush(cfg.CombinedBib); err != nil {
			return report, err
		}
		log.Info("wrote combined BibTeX", "path", cfg.CombinedBib, "entries", bibBuf.Len())
	}
	if risBuf != nil {
		if err := risBuf.Flush(cfg.CombinedRIS); err != nil {
			return report, err
		}
		log.Info("wrote combined RIS", "path", cfg.CombinedRIS, "entries", risBuf.Len())
	}
	if allBuf != nil {
		if err := allBuf.Flush(cfg.AllToBib); err != nil {
			return report, err
		}
		log.Info("wrote converted BibTeX", "path", cfg.AllToBib, "entries", allBuf.Len())
	}

	if listing != nil {
		html, err := listing.Render(all)
		if err != nil {
			report.addProblem(err.Error())
		} else if err := os.WriteFile(cfg.HTMLOutput, []byte(html), 0644); err != nil {
			return report, fmt.Errorf("writing HTML listing %s: %w", cfg.HTMLOutput, err)
		}
	}

	return report, nil
}

// parseFile reads and parses one input file into normalized records.
// Per-entry warnings are recorded on the report; a file that cannot be
// read or parsed at all returns a FormatError.
func parseFile(input Input, report *Report) ([]record.Record, error) {
	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, &record.FormatError{Path: input.Path, Format: input.Format, Err: err}
	}
	text := string(data)

	var recs []record.Record
	var warnings []record.ParseWarning

	switch input.Format {
	case record.FormatRIS:
		entries, w, err := ris.Parse(text)
		if err != nil {
			return nil, &record.FormatError{Path: input.Path, Format: input.Format, Err: err}
		}
		warnings = w
		for _, e := range entries {
			recs = append(recs, normalize.FromRIS(e))
		}
	default:
		entries, w, err := bibtex.Parse(text)
		if err != nil {
			return nil, &record.FormatError{Path: input.Path, Format: input.Format, Err: err}
		}
		warnings = w
		for _, e := range entries {
			recs = append(recs, normalize.FromBibTeX(e))
		}
	}

	for _, w := range warnings {
		report.Skipped++
		report.addProblem(fmt.Sprintf("%s: %s", input.Path, w))
	}
	return recs, nil
}
