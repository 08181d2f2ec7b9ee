// Package record defines the canonical in-memory representation of a
// bibliographic entry shared by the parsers, serializers and renderers.
package record

// Format identifies the source reference format of a record.
type Format string

const (
	FormatBibTeX Format = "bibtex"
	FormatRIS    Format = "ris"
)

// Record represents one bibliographic entry with a fixed canonical field
// set. Missing values are empty strings, never a failure. Fields that have
// no canonical slot are preserved in Extra so serialization does not lose
// data; Extra is never exposed to templates.
type Record struct {
	// Identity
	Type string `json:"type"` // BibTeX entry type: article, inproceedings, phdthesis, ...
	Key  string `json:"key"`  // Citation key; generated for RIS records without an ID tag

	// Metadata
	Title    string   `json:"title"`
	Authors  []Author `json:"authors"` // Source order preserved
	Venue    string   `json:"venue"`   // Journal, booktitle, or equivalent
	Year     string   `json:"year"`
	Month    string   `json:"month,omitempty"`
	Volume   string   `json:"volume,omitempty"`
	Number   string   `json:"number,omitempty"`
	Pages    string   `json:"pages,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	URL      string   `json:"url,omitempty"`
	DOI      string   `json:"doi,omitempty"`

	// Source format, for round-trip fidelity
	Source Format `json:"source"`

	// Passthrough bucket for unrecognized source fields
	Extra map[string]string `json:"extra,omitempty"`
}

// Author represents one paper author.
type Author struct {
	First string `json:"first"` // First/given name(s), may be empty
	Last  string `json:"last"`  // Last/family name
}

// Full returns the author as "First Last".
func (a Author) Full() string {
	if a.First != "" {
		return a.First + " " + a.Last
	}
	return a.Last
}
