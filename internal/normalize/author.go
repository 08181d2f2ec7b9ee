package normalize

import (
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// Common name suffixes to keep with the last name.
var nameSuffixes = map[string]bool{
	"jr":   true,
	"jr.":  true,
	"sr":   true,
	"sr.":  true,
	"ii":   true,
	"iii":  true,
	"iv":   true,
	"v":    true,
	"phd":  true,
	"ph.d": true,
	"md":   true,
	"m.d":  true,
}

// ParseBibTeXAuthors splits a BibTeX author field ("Last, First and Last,
// First") into authors in source order. Names without a comma are split on
// whitespace instead.
func ParseBibTeXAuthors(value string) []record.Author {
	var authors []record.Author
	for _, name := range strings.Split(value, " and ") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		authors = append(authors, ParseName(name))
	}
	return authors
}

// ParseName parses one author name. "Last, First" is re-ordered; a plain
// "First Last" name is split on its final word.
func ParseName(name string) record.Author {
	name = strings.TrimSpace(name)
	if last, first, found := strings.Cut(name, ","); found {
		return record.Author{
			First: strings.TrimSpace(first),
			Last:  strings.TrimSpace(last),
		}
	}
	first, last := splitAuthorName(name)
	return record.Author{First: first, Last: last}
}

// splitAuthorName splits a full name into first and last name.
// Handles common suffixes (Jr, Sr, II, III, IV, PhD, MD).
//
// Known limitations:
// - Multi-part surnames (von Neumann, van der Waals) split incorrectly
// - Non-Western name formats may not be handled correctly
// - Middle names are included in the first name
func splitAuthorName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}

	parts := strings.Fields(name)
	if len(parts) == 1 {
		// Single name (e.g., "Madonna")
		return "", parts[0]
	}

	// Check if the last part is a suffix
	lastPart := strings.ToLower(parts[len(parts)-1])
	if nameSuffixes[lastPart] && len(parts) > 2 {
		// Keep suffix with last name
		last = parts[len(parts)-2] + " " + parts[len(parts)-1]
		first = strings.Join(parts[:len(parts)-2], " ")
	} else {
		// Standard split: last part is last name
		last = parts[len(parts)-1]
		first = strings.Join(parts[:len(parts)-1], " ")
	}

	return first, last
}
