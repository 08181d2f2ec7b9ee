package bibtex

import (
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// splitEntries cuts BibTeX source text into raw entry chunks. Each chunk
// begins at an '@' and runs through the matching closing brace of the
// entry body, tolerating arbitrary whitespace and newlines inside values.
//
// An entry whose braces never balance is reported as a ParseWarning and
// skipped; scanning resumes at the next line-initial '@' so the rest of
// the file is still processed.
func splitEntries(text string) ([]string, []record.ParseWarning) {
	var chunks []string
	var warnings []record.ParseWarning

	i := 0
	index := 0
	for i < len(text) {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			break
		}
		start := i + at
		index++

		chunk, next, ok := scanEntry(text, start)
		if !ok {
			warnings = append(warnings, record.ParseWarning{
				Index:   index,
				Key:     entryKey(text[start:]),
				Message: "unterminated entry: braces never balance",
			})
			i = next
			continue
		}
		chunks = append(chunks, chunk)
		i = next
	}

	return chunks, warnings
}

// scanEntry scans one entry starting at the '@' at position start. It
// returns the entry text, the position to resume scanning, and whether the
// entry's braces balanced. On failure the resume position is the next
// line-initial '@' after start, or the end of the text.
func scanEntry(text string, start int) (chunk string, next int, ok bool) {
	depth := 0
	opened := false
	lineStart := false

	for i := start + 1; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if opened && depth == 0 {
				return text[start : i+1], i + 1, true
			}
		case '\n':
			lineStart = true
			continue
		case '@':
			if lineStart {
				// A line-initial '@' inside an open entry means the
				// previous entry never closed. Resync here.
				return "", i, false
			}
		}
		if c != ' ' && c != '\t' && c != '\r' {
			lineStart = false
		}
	}
	return "", len(text), false
}

// entryKey recovers the citation key from the head of a raw entry, for
// warning messages. Returns "" if none is found.
func entryKey(head string) string {
	open := strings.IndexByte(head, '{')
	if open < 0 {
		return ""
	}
	rest := head[open+1:]
	end := strings.IndexAny(rest, ",\n}")
	if end < 0 {
		if len(rest) > 40 {
			return ""
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
