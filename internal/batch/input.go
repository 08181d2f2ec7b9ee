package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/refpage/refpage/internal/record"
)

// Input is one resolved source file with its declared format.
type Input struct {
	Path   string
	Format record.Format
}

// DetectFormat maps a file extension to its reference format.
func DetectFormat(path string) (record.Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bib":
		return record.FormatBibTeX, true
	case ".ris":
		return record.FormatRIS, true
	}
	return "", false
}

// ResolveInputs expands the given paths into (path, format) pairs. A
// directory is scanned non-recursively for .bib and .ris files in
// lexicographic order, so repeated runs process files in the same order.
// A file argument with an unrecognized extension is an error.
func ResolveInputs(paths []string) ([]Input, error) {
	var inputs []Input
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("resolving input: %w", err)
		}

		if !info.IsDir() {
			format, ok := DetectFormat(path)
			if !ok {
				return nil, fmt.Errorf("%s: not a .bib or .ris file", path)
			}
			inputs = append(inputs, Input{Path: path, Format: format})
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, ok := DetectFormat(e.Name()); ok {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			format, _ := DetectFormat(name)
			inputs = append(inputs, Input{Path: filepath.Join(path, name), Format: format})
		}
	}
	return inputs, nil
}
