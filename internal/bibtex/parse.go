// Package bibtex parses and emits BibTeX reference files.
package bibtex

import (
	"errors"
	"strings"

	nickng "github.com/nickng/bibtex"

	"github.com/refpage/refpage/internal/record"
)

// Entry is one raw BibTeX entry before normalization. Field names are
// lowercased; values are the brace/quote contents with delimiters removed.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

// Parse parses BibTeX source text into raw entries in source order.
// Malformed entries are skipped and reported as ParseWarnings. A non-blank
// text that yields no entries at all is an error; the caller wraps it into
// a FormatError naming the file.
func Parse(text string) ([]Entry, []record.ParseWarning, error) {
	chunks, warnings := splitEntries(text)

	var entries []Entry
	index := 0
	for _, chunk := range chunks {
		index++
		if isDirective(chunk) {
			continue
		}

		bt, err := nickng.Parse(strings.NewReader(chunk))
		if err != nil {
			warnings = append(warnings, record.ParseWarning{
				Index:   index,
				Key:     entryKey(chunk),
				Message: err.Error(),
			})
			continue
		}
		for _, e := range bt.Entries {
			fields := make(map[string]string, len(e.Fields))
			for name, value := range e.Fields {
				fields[strings.ToLower(name)] = strings.TrimSpace(value.String())
			}
			entries = append(entries, Entry{
				Type:   strings.ToLower(e.Type),
				Key:    e.CiteName,
				Fields: fields,
			})
		}
	}

	if len(entries) == 0 && strings.TrimSpace(text) != "" {
		return nil, warnings, errors.New("no parseable BibTeX entries")
	}
	return entries, warnings, nil
}

// isDirective reports whether a chunk is a @string, @preamble or @comment
// block rather than a reference entry.
func isDirective(chunk string) bool {
	head := strings.ToLower(chunk)
	for _, d := range []string{"@string", "@preamble", "@comment"} {
		if strings.HasPrefix(head, d) {
			return true
		}
	}
	return false
}
