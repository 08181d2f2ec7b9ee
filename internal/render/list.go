package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strconv"

	"github.com/refpage/refpage/internal/record"
)

// ListRenderer renders one HTML file listing every record of a batch.
type ListRenderer struct {
	tmpl *template.Template
	opts Options
}

// NewListRenderer parses HTML template text. The template binds "papers",
// a slice of per-record contexts sorted newest first.
func NewListRenderer(name, text string, opts Options) (*ListRenderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML template %s: %w", name, err)
	}
	return &ListRenderer{tmpl: tmpl, opts: opts}, nil
}

// NewListRendererFromFile parses the HTML template at path.
func NewListRendererFromFile(path string, opts Options) (*ListRenderer, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading HTML template: %w", err)
	}
	return NewListRenderer(path, string(text), opts)
}

// Render renders the listing for a batch of records, sorted by year
// descending with ties keeping encounter order.
func (r *ListRenderer) Render(recs []record.Record) (string, error) {
	sorted := make([]record.Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return yearValue(sorted[i]) > yearValue(sorted[j])
	})

	papers := make([]Context, len(sorted))
	for i, rec := range sorted {
		papers[i] = BuildContext(rec, r.opts)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]any{"papers": papers}); err != nil {
		return "", fmt.Errorf("rendering HTML listing: %w", err)
	}
	return buf.String(), nil
}

// yearValue parses a record's year for sorting; non-numeric years sort
// last.
func yearValue(rec record.Record) int {
	y, err := strconv.Atoi(rec.Year)
	if err != nil {
		return -1
	}
	return y
}
