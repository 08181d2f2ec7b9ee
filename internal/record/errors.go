package record

import "fmt"

// FormatError reports a file that could not be read or parsed at all in its
// declared format. It is fatal for that file only; the batch continues.
type FormatError struct {
	Path   string
	Format Format
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: not parseable as %s: %v", e.Path, e.Format, e.Err)
	}
	return fmt.Sprintf("%s: not parseable as %s", e.Path, e.Format)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseWarning reports a single malformed entry that was skipped. The rest
// of the file is still processed.
type ParseWarning struct {
	Index   int    // 1-based entry position in the source file
	Key     string // Citation key if one was recovered, else empty
	Message string
}

func (w ParseWarning) String() string {
	if w.Key != "" {
		return fmt.Sprintf("entry %d (%s): %s", w.Index, w.Key, w.Message)
	}
	return fmt.Sprintf("entry %d: %s", w.Index, w.Message)
}
