package batch

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Report summarizes one batch run: how many records were parsed, how many
// rendered, and how many were skipped with reasons.
type Report struct {
	FilesRead int      `json:"files_read"`
	Parsed    int      `json:"parsed"`
	Rendered  int      `json:"rendered"`
	Skipped   int      `json:"skipped"`
	Problems  []string `json:"problems,omitempty"`
}

func (r *Report) addProblem(msg string) {
	r.Problems = append(r.Problems, msg)
}

// Human renders the report as an aligned two-column table followed by the
// collected problems.
func (r *Report) Human() string {
	rows := [][2]string{
		{"Files read", fmt.Sprintf("%d", r.FilesRead)},
		{"Records parsed", fmt.Sprintf("%d", r.Parsed)},
		{"Pages rendered", fmt.Sprintf("%d", r.Rendered)},
		{"Records skipped", fmt.Sprintf("%d", r.Skipped)},
	}

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row[0])
		b.WriteString(strings.Repeat(" ", labelWidth-runewidth.StringWidth(row[0])))
		b.WriteString("  ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	if len(r.Problems) > 0 {
		b.WriteString("\nProblems:\n")
		for _, p := range r.Problems {
			b.WriteString("  - " + p + "\n")
		}
	}
	return b.String()
}
