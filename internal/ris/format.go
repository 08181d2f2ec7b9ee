package ris

import (
	"fmt"
	"sort"
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// typeToRIS maps BibTeX entry types to RIS reference types.
var typeToRIS = map[string]string{
	"article":       "JOUR",
	"book":          "BOOK",
	"inbook":        "CHAP",
	"incollection":  "CHAP",
	"inproceedings": "CONF",
	"proceedings":   "CONF",
	"phdthesis":     "THES",
	"mastersthesis": "THES",
	"techreport":    "RPRT",
}

// Format converts a record to RIS: two-letter tag lines terminated by the
// ER marker. Parsing the output yields the same record back on canonical
// and passthrough fields.
func Format(rec record.Record) string {
	var lines []string

	refType, ok := typeToRIS[rec.Type]
	if !ok {
		refType = "GEN"
	}
	lines = append(lines, "TY  - "+refType)
	if rec.Key != "" {
		lines = append(lines, "ID  - "+rec.Key)
	}
	for _, a := range rec.Authors {
		name := a.Last
		if a.First != "" {
			name = a.Last + ", " + a.First
		}
		lines = append(lines, "AU  - "+name)
	}
	writeTag(&lines, "TI", rec.Title)
	writeTag(&lines, "T2", rec.Venue)
	py := rec.Year
	if py != "" && rec.Month != "" {
		py += "/" + rec.Month
	}
	writeTag(&lines, "PY", py)
	writeTag(&lines, "VL", rec.Volume)
	writeTag(&lines, "IS", rec.Number)

	if sp, ep, found := strings.Cut(rec.Pages, "--"); found {
		writeTag(&lines, "SP", sp)
		writeTag(&lines, "EP", ep)
	} else {
		writeTag(&lines, "SP", rec.Pages)
	}

	writeTag(&lines, "AB", rec.Abstract)
	writeTag(&lines, "UR", rec.URL)
	writeTag(&lines, "DO", rec.DOI)

	if rec.Type == "phdthesis" || rec.Type == "mastersthesis" {
		writeTag(&lines, "M3", thesisKind(rec.Type))
		writeTag(&lines, "PB", rec.Extra["school"])
		writeTag(&lines, "CY", rec.Extra["address"])
	}

	// Raw passthrough tags, sorted for deterministic output. Named
	// passthrough fields from other formats have no RIS tag and are
	// dropped.
	var raw []string
	for name := range rec.Extra {
		if len(name) == 2 {
			raw = append(raw, name)
		}
	}
	sort.Strings(raw)
	for _, name := range raw {
		writeTag(&lines, strings.ToUpper(name), rec.Extra[name])
	}

	lines = append(lines, "ER  - ")
	return strings.Join(lines, "\n") + "\n"
}

// FormatList converts multiple records to RIS, one blank line between
// records.
func FormatList(recs []record.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, Format(rec))
	}
	return strings.Join(entries, "\n")
}

func writeTag(lines *[]string, name, value string) {
	if value == "" {
		return
	}
	*lines = append(*lines, fmt.Sprintf("%s  - %s", name, value))
}

func thesisKind(entryType string) string {
	if entryType == "phdthesis" {
		return "PhD Thesis"
	}
	return "Master's Thesis"
}
