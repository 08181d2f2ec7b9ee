// Package ris parses and emits RIS reference files.
package ris

import (
	"errors"
	"regexp"
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// Tag is one tag/value line of an RIS record.
type Tag struct {
	Name  string // Two-letter tag, uppercase
	Value string
}

// Entry is one raw RIS record: its tags in source order. Repeated tags
// (authors, keywords) keep one Tag per occurrence.
type Entry struct {
	Tags []Tag
}

// First returns the value of the first occurrence of a tag, or "".
func (e Entry) First(name string) string {
	for _, t := range e.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// All returns the values of every occurrence of a tag, in source order.
func (e Entry) All(name string) []string {
	var values []string
	for _, t := range e.Tags {
		if t.Name == name {
			values = append(values, t.Value)
		}
	}
	return values
}

// tagLine matches an RIS tag line: two uppercase alphanumerics, two
// spaces, a dash, then the value.
var tagLine = regexp.MustCompile(`^([A-Z][A-Z0-9])  - ?(.*)$`)

// Parse parses RIS source text into raw records in source order. Records
// are terminated by the ER marker; a trailing record without ER is still
// emitted. Lines that are not tag lines are appended to the previous
// tag's value as unstructured continuation text. A chunk containing only
// unrecognized lines is reported as a ParseWarning and skipped. Non-blank
// text yielding no records at all is an error; the caller wraps it into a
// FormatError naming the file.
func Parse(text string) ([]Entry, []record.ParseWarning, error) {
	var entries []Entry
	var warnings []record.ParseWarning

	var current Entry
	junk := 0
	index := 0

	flush := func() {
		if len(current.Tags) > 0 {
			index++
			entries = append(entries, current)
		} else if junk > 0 {
			index++
			warnings = append(warnings, record.ParseWarning{
				Index:   index,
				Message: "no recognizable RIS tags in record",
			})
		}
		current = Entry{}
		junk = 0
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			// Continuation of the previous value, or junk if there is
			// no previous tag to attach to.
			if len(current.Tags) > 0 {
				last := &current.Tags[len(current.Tags)-1]
				last.Value = strings.TrimSpace(last.Value + " " + strings.TrimSpace(line))
			} else {
				junk++
			}
			continue
		}

		name, value := m[1], strings.TrimSpace(m[2])
		if name == "ER" {
			flush()
			continue
		}
		current.Tags = append(current.Tags, Tag{Name: name, Value: value})
	}
	flush()

	if len(entries) == 0 && strings.TrimSpace(text) != "" {
		return nil, warnings, errors.New("no parseable RIS records")
	}
	return entries, warnings, nil
}
