package record

import "strings"

// slugUnsafe lists characters that cannot appear in an output filename.
var slugUnsafe = map[rune]bool{
	'/': true, '\\': true, ':': true, '*': true, '?': true,
	'"': true, '<': true, '>': true, '|': true, 0: true,
}

// Slug derives the filesystem-safe output filename stem for a record:
// year and title joined by a hyphen, spaces replaced by hyphens.
// Two records with the same year and title produce the same slug; the
// later one overwrites the earlier output file.
func (r Record) Slug() string {
	title := strings.Join(strings.Fields(r.Title), "-")
	var b strings.Builder
	if r.Year != "" {
		b.WriteString(r.Year)
		if title != "" {
			b.WriteByte('-')
		}
	}
	for _, c := range title {
		if slugUnsafe[c] {
			continue
		}
		b.WriteRune(c)
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
