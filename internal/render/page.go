package render

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"text/template"

	"github.com/refpage/refpage/internal/record"
)

// TemplateError reports a template referencing a field that does not exist
// in a record's context. Only that record's render is aborted.
type TemplateError struct {
	Key   string // Citation key of the record being rendered
	Field string // Missing field name, if it could be identified
	Err   error
}

func (e *TemplateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("record %s: template references unknown field %q", e.Key, e.Field)
	}
	return fmt.Sprintf("record %s: template error: %v", e.Key, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// missingKey extracts the field name from a missingkey=error exec failure.
var missingKey = regexp.MustCompile(`map has no entry for key "([^"]+)"`)

// PageRenderer renders one markdown page per record through a user
// template. The template is parsed once per batch at construction.
type PageRenderer struct {
	tmpl *template.Template
	opts Options
}

// NewPageRenderer parses template text.
func NewPageRenderer(name, text string, opts Options) (*PageRenderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &PageRenderer{tmpl: tmpl, opts: opts}, nil
}

// NewPageRendererFromFile parses the template at path.
func NewPageRendererFromFile(path string, opts Options) (*PageRenderer, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return NewPageRenderer(path, string(text), opts)
}

// Render renders one record. It returns the output filename (slug + .md)
// and the page content. A reference to a field missing from the context
// is a TemplateError.
func (r *PageRenderer) Render(rec record.Record) (filename, content string, err error) {
	ctx := BuildContext(rec, r.opts)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]any(ctx)); err != nil {
		terr := &TemplateError{Key: rec.Key, Err: err}
		if m := missingKey.FindStringSubmatch(err.Error()); m != nil {
			terr.Field = m[1]
		}
		return "", "", terr
	}

	return rec.Slug() + ".md", buf.String(), nil
}
