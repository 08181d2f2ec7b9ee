package bibtex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// bookFieldTypes lists entry types whose venue serializes as booktitle
// rather than journal.
var bookFieldTypes = map[string]bool{
	"inproceedings": true,
	"inbook":        true,
	"incollection":  true,
	"proceedings":   true,
}

// Format converts a record to BibTeX: @type{key, field = {value}, ...}
// with one field per line. Values are written verbatim so that parsing
// the output yields the same record back.
func Format(rec record.Record) string {
	entryType := rec.Type
	if entryType == "" {
		entryType = "article"
	}

	var fields []string
	addField := func(name, value string) {
		if value == "" {
			return
		}
		fields = append(fields, fmt.Sprintf("  %s = {%s}", name, value))
	}

	if len(rec.Authors) > 0 {
		addField("author", formatAuthors(rec.Authors))
	}
	addField("title", rec.Title)
	if rec.Venue != "" {
		name := "journal"
		if bookFieldTypes[entryType] {
			name = "booktitle"
		}
		addField(name, rec.Venue)
	}
	addField("year", rec.Year)
	addField("month", rec.Month)
	addField("volume", rec.Volume)
	addField("number", rec.Number)
	addField("pages", rec.Pages)
	addField("doi", rec.DOI)
	addField("url", rec.URL)
	addField("abstract", rec.Abstract)
	for _, name := range extraFieldNames(rec) {
		addField(name, rec.Extra[name])
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, rec.Key))
	b.WriteString(strings.Join(fields, ",\n"))
	b.WriteString("\n}\n")
	return b.String()
}

// FormatList converts multiple records to BibTeX, one blank line between
// entries.
func FormatList(recs []record.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, Format(rec))
	}
	return strings.Join(entries, "\n")
}

// extraFieldNames returns the passthrough field names to serialize, in
// sorted order for deterministic output. Raw two-letter RIS tags that had
// no BibTeX equivalent are dropped here rather than invented as fields.
func extraFieldNames(rec record.Record) []string {
	var names []string
	for name := range rec.Extra {
		if rec.Source == record.FormatRIS && len(name) == 2 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatAuthors formats authors in BibTeX style: "Last, First and Last, First".
func formatAuthors(authors []record.Author) string {
	var formatted []string
	for _, a := range authors {
		if a.First != "" {
			formatted = append(formatted, fmt.Sprintf("%s, %s", a.Last, a.First))
		} else {
			formatted = append(formatted, a.Last)
		}
	}
	return strings.Join(formatted, " and ")
}
