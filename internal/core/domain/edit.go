package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces text[Start:End] with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// ReplaceField returns an edit that rewrites f as the given values, one field
// instance per value, separated by a blank line.
func ReplaceField(f Field, values ...string) Edit {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatField(f.Name, v)
	}
	return Edit{Start: f.Start, End: f.End, Text: strings.Join(parts, "\n\n")}
}

// ApplyEdits applies non-overlapping edits to text. Bytes outside the edited
// spans are preserved. Edits may be given in any order.
func ApplyEdits(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, e := range sorted {
		if e.Start < prev || e.End < e.Start || e.End > len(text) {
			return "", fmt.Errorf("edit [%d:%d]: %w", e.Start, e.End, ErrInvalidInput)
		}
		b.WriteString(text[prev:e.Start])
		b.WriteString(e.Text)
		prev = e.End
	}
	b.WriteString(text[prev:])

	return b.String(), nil
}
