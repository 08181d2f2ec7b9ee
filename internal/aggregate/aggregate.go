// Package aggregate accumulates serialized records into combined output
// files.
package aggregate

import (
	"fmt"
	"os"
	"strings"

	"github.com/refpage/refpage/internal/bibtex"
	"github.com/refpage/refpage/internal/record"
	"github.com/refpage/refpage/internal/ris"
)

// Buffer is an ordered sequence of serialized record strings built up
// during one concatenation operation and flushed to a file at the end.
// Entries are never deduplicated; duplicates across source files are
// preserved verbatim.
type Buffer struct {
	target  record.Format
	entries []string
}

// NewBuffer creates a buffer emitting the given format.
func NewBuffer(target record.Format) *Buffer {
	return &Buffer{target: target}
}

// Add serializes a record into the buffer in the buffer's target format.
// A record from the other source format goes through the cross-format
// conversion path.
func (b *Buffer) Add(rec record.Record) {
	switch b.target {
	case record.FormatRIS:
		b.entries = append(b.entries, ris.Format(rec))
	default:
		b.entries = append(b.entries, bibtex.Format(rec))
	}
}

// Len returns the number of accumulated entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// String returns the combined output, one blank line between entries.
func (b *Buffer) String() string {
	return strings.Join(b.entries, "\n")
}

// Flush writes the combined output to path in one write. The file is
// closed before Flush returns on every path.
func (b *Buffer) Flush(path string) error {
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing combined output %s: %w", path, err)
	}
	return nil
}
