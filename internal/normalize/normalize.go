// Package normalize maps format-native entries onto the canonical record
// field set. Normalization is a pure function of the entry's raw fields.
package normalize

import (
	"fmt"
	"strings"

	"github.com/refpage/refpage/internal/bibtex"
	"github.com/refpage/refpage/internal/record"
	"github.com/refpage/refpage/internal/ris"
)

// FromBibTeX converts a raw BibTeX entry to a canonical record. Canonical
// fields are mapped by name; anything else lands in the passthrough
// bucket. A record with a DOI but no URL gets a doi.org URL derived.
func FromBibTeX(e bibtex.Entry) record.Record {
	rec := record.Record{
		Type:   e.Type,
		Key:    e.Key,
		Source: record.FormatBibTeX,
	}

	var journal, booktitle, number, issue string
	for name, value := range e.Fields {
		switch name {
		case "title":
			rec.Title = value
		case "author":
			rec.Authors = ParseBibTeXAuthors(value)
		case "journal":
			journal = value
		case "booktitle":
			booktitle = value
		case "year":
			rec.Year = value
		case "month":
			rec.Month = value
		case "volume":
			rec.Volume = value
		case "number":
			number = value
		case "issue":
			issue = value
		case "pages":
			rec.Pages = value
		case "abstract":
			rec.Abstract = value
		case "url":
			rec.URL = value
		case "doi":
			rec.DOI = value
		default:
			setExtra(&rec, name, value)
		}
	}

	// When both aliases are present, journal and number win; the loser is
	// kept as passthrough so serialization does not lose it.
	rec.Venue = journal
	if booktitle != "" {
		if rec.Venue == "" {
			rec.Venue = booktitle
		} else {
			setExtra(&rec, "booktitle", booktitle)
		}
	}
	rec.Number = number
	if issue != "" {
		if rec.Number == "" {
			rec.Number = issue
		} else {
			setExtra(&rec, "issue", issue)
		}
	}

	finish(&rec)
	return rec
}

// risTypes maps RIS reference types to BibTeX entry types, the fixed
// lookup table for cross-format conversion. THES is resolved separately
// from the M3 tag.
var risTypes = map[string]string{
	"JOUR": "article",
	"BOOK": "book",
	"CHAP": "inbook",
	"CONF": "inproceedings",
	"RPRT": "techreport",
}

// FromRIS converts a raw RIS record to a canonical record. Repeated
// author tags accumulate in source order; SP/EP pages are joined; tags
// with no canonical slot are kept verbatim in the passthrough bucket
// under their lowercased tag name.
func FromRIS(e ris.Entry) record.Record {
	rec := record.Record{Source: record.FormatRIS}
	rec.Type = risEntryType(e)

	var startPage, endPage string
	for _, t := range e.Tags {
		switch t.Name {
		case "TY":
			// Consumed by risEntryType.
		case "M3":
			if rec.Type != "phdthesis" && rec.Type != "mastersthesis" {
				setExtra(&rec, "m3", t.Value)
			}
		case "ID":
			rec.Key = t.Value
		case "TI", "T1":
			if rec.Title == "" {
				rec.Title = t.Value
			}
		case "AU", "A1":
			rec.Authors = append(rec.Authors, ParseName(t.Value))
		case "PY", "Y1":
			if rec.Year == "" {
				rec.Year, rec.Month = parseRISDate(t.Value)
			}
		case "JO", "JF", "T2", "J1":
			if rec.Venue == "" {
				rec.Venue = t.Value
			}
		case "VL":
			rec.Volume = t.Value
		case "IS":
			rec.Number = t.Value
		case "SP":
			startPage = t.Value
		case "EP":
			endPage = t.Value
		case "AB", "N2":
			if rec.Abstract == "" {
				rec.Abstract = t.Value
			}
		case "UR":
			rec.URL = t.Value
		case "DO":
			rec.DOI = t.Value
		case "PB":
			if rec.Type == "phdthesis" || rec.Type == "mastersthesis" {
				setExtra(&rec, "school", t.Value)
			} else {
				setExtra(&rec, strings.ToLower(t.Name), t.Value)
			}
		case "CY":
			if rec.Type == "phdthesis" || rec.Type == "mastersthesis" {
				setExtra(&rec, "address", t.Value)
			} else {
				setExtra(&rec, strings.ToLower(t.Name), t.Value)
			}
		default:
			setExtra(&rec, strings.ToLower(t.Name), t.Value)
		}
	}

	if startPage != "" && endPage != "" {
		rec.Pages = startPage + "--" + endPage
	} else if startPage != "" {
		rec.Pages = startPage
	}

	if rec.Key == "" {
		var firstLast string
		if len(rec.Authors) > 0 {
			firstLast = rec.Authors[0].Last
		}
		rec.Key = GenerateKey(firstLast, rec.Year, rec.Title)
	}

	finish(&rec)
	return rec
}

// finish applies derivations shared by both formats.
func finish(rec *record.Record) {
	if rec.URL == "" && rec.DOI != "" {
		rec.URL = "https://doi.org/" + rec.DOI
	}
}

// risEntryType resolves the BibTeX entry type for an RIS record. A thesis
// is a phdthesis when M3 mentions a doctorate, else a mastersthesis.
func risEntryType(e ris.Entry) string {
	refType := strings.ToUpper(e.First("TY"))
	if refType == "THES" {
		m3 := strings.ToLower(e.First("M3"))
		if strings.Contains(m3, "phd") || strings.Contains(m3, "doct") || strings.Contains(m3, "dissertation") {
			return "phdthesis"
		}
		return "mastersthesis"
	}
	if t, ok := risTypes[refType]; ok {
		return t
	}
	return "misc"
}

// parseRISDate splits an RIS date value (YYYY, YYYY/MM or YYYY/MM/DD)
// into year and a zero-padded month.
func parseRISDate(value string) (year, month string) {
	parts := strings.Split(value, "/")
	year = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		m := strings.TrimSpace(parts[1])
		if len(m) == 1 {
			m = "0" + m
		}
		month = m
	}
	return year, month
}

func setExtra(rec *record.Record, name, value string) {
	if rec.Extra == nil {
		rec.Extra = make(map[string]string)
	}
	if existing, ok := rec.Extra[name]; ok && existing != "" {
		rec.Extra[name] = fmt.Sprintf("%s; %s", existing, value)
		return
	}
	rec.Extra[name] = value
}
