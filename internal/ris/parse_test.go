package ris

import (
	"testing"
)

const twoRecords = `TY  - JOUR
AU  - Smith, John
AU  - Doe, Jane
TI  - First Paper
JO  - Journal of Things
PY  - 2024
SP  - 1
EP  - 10
ER  -

TY  - CONF
AU  - Doe, Jane
TI  - Second Paper
PY  - 2023
ER  -
`

func TestParse_TwoRecords(t *testing.T) {
	entries, warnings, err := Parse(twoRecords)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Parse() warnings = %v, want none", warnings)
	}
	if len(entries) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(entries))
	}

	if got := entries[0].First("TI"); got != "First Paper" {
		t.Errorf("TI = %q", got)
	}
	if got := entries[1].First("TY"); got != "CONF" {
		t.Errorf("second record TY = %q, want CONF", got)
	}
}

func TestParse_RepeatedAuthorsKeepOrder(t *testing.T) {
	entries, _, err := Parse(twoRecords)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	authors := entries[0].All("AU")
	if len(authors) != 2 {
		t.Fatalf("All(AU) = %d values, want 2", len(authors))
	}
	if authors[0] != "Smith, John" || authors[1] != "Doe, Jane" {
		t.Errorf("author order not preserved: %v", authors)
	}
}

func TestParse_MissingTerminatorAtEOF(t *testing.T) {
	text := "TY  - JOUR\nTI  - Unterminated Record\nPY  - 2020\n"
	entries, _, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(entries))
	}
	if got := entries[0].First("TI"); got != "Unterminated Record" {
		t.Errorf("TI = %q", got)
	}
}

func TestParse_ContinuationLines(t *testing.T) {
	text := "TY  - JOUR\nAB  - The abstract starts here\nand continues on this line\nPY  - 2020\nER  - \n"
	entries, _, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "The abstract starts here and continues on this line"
	if got := entries[0].First("AB"); got != want {
		t.Errorf("AB = %q, want %q", got, want)
	}
}

func TestParse_JunkChunkWarned(t *testing.T) {
	text := `garbage line one
garbage line two
ER  -

TY  - JOUR
TI  - Valid
PY  - 2020
ER  -
`
	entries, warnings, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(entries))
	}
	if len(warnings) != 1 {
		t.Fatalf("Parse() warnings = %d, want 1", len(warnings))
	}
}

func TestParse_EntirelyUnparseable(t *testing.T) {
	_, _, err := Parse("not ris at all\nstill not ris\n")
	if err == nil {
		t.Fatal("Parse() should error on text with no records")
	}
}

func TestParse_BlankInput(t *testing.T) {
	entries, warnings, err := Parse("\n\n")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil for blank input", err)
	}
	if len(entries) != 0 || len(warnings) != 0 {
		t.Errorf("blank input should produce nothing, got %d records, %d warnings", len(entries), len(warnings))
	}
}
