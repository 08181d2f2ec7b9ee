// Package render binds canonical records into user templates to produce
// markdown pages and HTML listings.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// Options configures rendering for one batch. There is no shared template
// environment; each renderer owns its parsed template.
type Options struct {
	IncludeAbstract bool
}

// Context is the set of values a template can bind for one record. Built
// fresh per record, never mutated after construction. Passthrough fields
// are not exposed.
type Context map[string]any

// BuildContext builds the template context for a record: every canonical
// field plus the derived slug, permalink, date, citation, excerpt and
// paperurl values.
func BuildContext(rec record.Record, opts Options) Context {
	slug := rec.Slug()

	ctx := Context{
		"type":      rec.Type,
		"key":       rec.Key,
		"title":     rec.Title,
		"authors":   formatAuthors(rec.Authors),
		"venue":     rec.Venue,
		"year":      rec.Year,
		"month":     rec.Month,
		"volume":    rec.Volume,
		"number":    rec.Number,
		"pages":     rec.Pages,
		"abstract":  rec.Abstract,
		"url":       rec.URL,
		"doi":       rec.DOI,
		"slug":      slug,
		"permalink": slug,
		"date":      deriveDate(rec),
		"citation":  citation(rec),
		"excerpt":   "",
		"paperurl":  "",
	}

	if opts.IncludeAbstract {
		ctx["excerpt"] = rec.Abstract
		ctx["paperurl"] = rec.URL
	}

	return ctx
}

// formatAuthors joins authors as "First Last, First Last".
func formatAuthors(authors []record.Author) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Full()
	}
	return strings.Join(names, ", ")
}

// deriveDate builds the page date YYYY-MM-01, defaulting the month to 01.
// Empty when the year is missing.
func deriveDate(rec record.Record) string {
	if rec.Year == "" {
		return ""
	}
	month := rec.Month
	if month == "" {
		month = "01"
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s-%s-01", rec.Year, month)
}

// citation builds an HTML-escaped citation string:
// "Authors (Year). Title. Venue."
func citation(rec record.Record) string {
	var b strings.Builder
	if authors := formatAuthors(rec.Authors); authors != "" {
		b.WriteString(authors)
		if rec.Year != "" {
			b.WriteString(" (" + rec.Year + ")")
		}
		b.WriteString(". ")
	} else if rec.Year != "" {
		b.WriteString("(" + rec.Year + "). ")
	}
	if rec.Title != "" {
		b.WriteString(rec.Title + ". ")
	}
	if rec.Venue != "" {
		b.WriteString(rec.Venue + ".")
	}
	return html.EscapeString(strings.TrimSpace(b.String()))
}
