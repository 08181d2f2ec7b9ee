package normalize

import (
	"reflect"
	"testing"

	"github.com/refpage/refpage/internal/bibtex"
	"github.com/refpage/refpage/internal/record"
	"github.com/refpage/refpage/internal/ris"
)

func parseOneBib(t *testing.T, text string) record.Record {
	t.Helper()
	entries, warnings, err := bibtex.Parse(text)
	if err != nil {
		t.Fatalf("bibtex.Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("bibtex.Parse() warnings = %v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("bibtex.Parse() returned %d entries, want 1", len(entries))
	}
	return FromBibTeX(entries[0])
}

func parseOneRIS(t *testing.T, text string) record.Record {
	t.Helper()
	entries, warnings, err := ris.Parse(text)
	if err != nil {
		t.Fatalf("ris.Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("ris.Parse() warnings = %v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("ris.Parse() returned %d records, want 1", len(entries))
	}
	return FromRIS(entries[0])
}

func TestFromBibTeX_CanonicalFields(t *testing.T) {
	rec := parseOneBib(t, `@article{smith2024,
  title = {An Innovative Approach to Synthetic Data Generation},
  author = {Smith, John and Doe, Jane},
  year = {2024},
  journal = {Journal of Artificial Research},
  volume = {12},
  number = {3},
  pages = {100--110},
  publisher = {Somewhere Press}
}`)

	if rec.Title != "An Innovative Approach to Synthetic Data Generation" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Venue != "Journal of Artificial Research" {
		t.Errorf("Venue = %q", rec.Venue)
	}
	if rec.Year != "2024" {
		t.Errorf("Year = %q", rec.Year)
	}
	wantAuthors := []record.Author{
		{First: "John", Last: "Smith"},
		{First: "Jane", Last: "Doe"},
	}
	if !reflect.DeepEqual(rec.Authors, wantAuthors) {
		t.Errorf("Authors = %v, want %v", rec.Authors, wantAuthors)
	}
	if rec.Volume != "12" || rec.Number != "3" || rec.Pages != "100--110" {
		t.Errorf("locator fields = %q/%q/%q", rec.Volume, rec.Number, rec.Pages)
	}
	if rec.Extra["publisher"] != "Somewhere Press" {
		t.Errorf("unknown field should land in passthrough, Extra = %v", rec.Extra)
	}
	if rec.Source != record.FormatBibTeX {
		t.Errorf("Source = %q", rec.Source)
	}
}

func TestFromBibTeX_MissingFieldsDefaultEmpty(t *testing.T) {
	rec := parseOneBib(t, `@article{min2020,
  title = {Minimal}
}`)
	if rec.Title != "Minimal" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Year != "" || rec.Venue != "" || rec.Abstract != "" {
		t.Errorf("missing fields should default to empty strings: %+v", rec)
	}
}

func TestFromBibTeX_DOIDerivesURL(t *testing.T) {
	rec := parseOneBib(t, `@article{d2020,
  title = {T},
  year = {2020},
  doi = {10.1234/abc}
}`)
	if rec.URL != "https://doi.org/10.1234/abc" {
		t.Errorf("URL = %q, want DOI-derived URL", rec.URL)
	}
}

func TestFromRIS_CanonicalFields(t *testing.T) {
	rec := parseOneRIS(t, `TY  - JOUR
ID  - smith2024
AU  - Smith, John
AU  - Doe, Jane
TI  - An Innovative Approach
JO  - Journal of Artificial Research
PY  - 2024/05
VL  - 12
IS  - 3
SP  - 100
EP  - 110
ER  -
`)

	if rec.Type != "article" {
		t.Errorf("Type = %q, want article", rec.Type)
	}
	if rec.Key != "smith2024" {
		t.Errorf("Key = %q", rec.Key)
	}
	wantAuthors := []record.Author{
		{First: "John", Last: "Smith"},
		{First: "Jane", Last: "Doe"},
	}
	if !reflect.DeepEqual(rec.Authors, wantAuthors) {
		t.Errorf("Authors = %v, want %v", rec.Authors, wantAuthors)
	}
	if rec.Year != "2024" || rec.Month != "05" {
		t.Errorf("Year/Month = %q/%q", rec.Year, rec.Month)
	}
	if rec.Pages != "100--110" {
		t.Errorf("Pages = %q, want SP--EP join", rec.Pages)
	}
	if rec.Venue != "Journal of Artificial Research" {
		t.Errorf("Venue = %q", rec.Venue)
	}
}

func TestFromRIS_GeneratedKey(t *testing.T) {
	rec := parseOneRIS(t, `TY  - JOUR
AU  - Zhang, Wei
TI  - Visual Interpretation of Networks
PY  - 2018
ER  -
`)
	if rec.Key != "Zhang2018-vi" {
		t.Errorf("Key = %q, want Zhang2018-vi", rec.Key)
	}
}

func TestFromRIS_PhdThesis(t *testing.T) {
	rec := parseOneRIS(t, `TY  - THES
AU  - Jones, Ann
TI  - A Thesis
PY  - 2019
M3  - Doctoral dissertation
PB  - Example University
CY  - Springfield
ER  -
`)
	if rec.Type != "phdthesis" {
		t.Errorf("Type = %q, want phdthesis", rec.Type)
	}
	if rec.Extra["school"] != "Example University" {
		t.Errorf("PB should map to school, Extra = %v", rec.Extra)
	}
	if rec.Extra["address"] != "Springfield" {
		t.Errorf("CY should map to address, Extra = %v", rec.Extra)
	}
}

func TestFromRIS_MastersThesisDefault(t *testing.T) {
	rec := parseOneRIS(t, `TY  - THES
TI  - Another Thesis
PY  - 2021
ER  -
`)
	if rec.Type != "mastersthesis" {
		t.Errorf("Type = %q, want mastersthesis when M3 is absent", rec.Type)
	}
}

func TestFromRIS_UnknownTagsPassthrough(t *testing.T) {
	rec := parseOneRIS(t, `TY  - JOUR
TI  - T
PY  - 2020
KW  - synthetic data
ER  -
`)
	if rec.Extra["kw"] != "synthetic data" {
		t.Errorf("unmapped tag should be preserved, Extra = %v", rec.Extra)
	}
}

// Round-trip: serialize(normalize(parse(E))) parsed and normalized again
// equals the original record on canonical and passthrough fields.
func TestRoundTrip_BibTeX(t *testing.T) {
	orig := parseOneBib(t, `@inproceedings{doe2023,
  title = {Another Paper},
  author = {Doe, Jane and John Smith},
  year = {2023},
  booktitle = {Proceedings of Things},
  pages = {5--15},
  note = {passthrough survives}
}`)

	again := parseOneBib(t, bibtex.Format(orig))
	if !reflect.DeepEqual(orig, again) {
		t.Errorf("BibTeX round trip changed the record:\norig:  %+v\nagain: %+v", orig, again)
	}
}

func TestRoundTrip_RIS(t *testing.T) {
	orig := parseOneRIS(t, `TY  - JOUR
ID  - smith2024
AU  - Smith, John
AU  - Doe, Jane
TI  - An Innovative Approach
T2  - Journal of Artificial Research
PY  - 2024/05
SP  - 100
EP  - 110
KW  - synthetic data
ER  -
`)

	again := parseOneRIS(t, ris.Format(orig))
	if !reflect.DeepEqual(orig, again) {
		t.Errorf("RIS round trip changed the record:\norig:  %+v\nagain: %+v", orig, again)
	}
}

// Cross-format: RIS converted to BibTeX and parsed back preserves title,
// year and author order.
func TestCrossFormat_RISToBibTeX(t *testing.T) {
	orig := parseOneRIS(t, `TY  - CONF
AU  - Smith, John
AU  - Doe, Jane
TI  - Cross Format Paper
T2  - Some Conference
PY  - 2022
KW  - dropped on conversion
ER  -
`)

	converted := parseOneBib(t, bibtex.Format(orig))

	if converted.Type != "inproceedings" {
		t.Errorf("Type = %q, want inproceedings", converted.Type)
	}
	if converted.Title != orig.Title {
		t.Errorf("Title = %q, want %q", converted.Title, orig.Title)
	}
	if converted.Year != orig.Year {
		t.Errorf("Year = %q, want %q", converted.Year, orig.Year)
	}
	if !reflect.DeepEqual(converted.Authors, orig.Authors) {
		t.Errorf("author order not preserved: %v vs %v", converted.Authors, orig.Authors)
	}
	if _, ok := converted.Extra["kw"]; ok {
		t.Errorf("raw RIS tags should be dropped on conversion, Extra = %v", converted.Extra)
	}
}
