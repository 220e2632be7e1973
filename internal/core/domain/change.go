package domain

import (
	"fmt"
	"strings"
)

// Change records one correction applied to a document.
type Change struct {
	// Rule is the name of the rule that made the change.
	Rule string

	// Field is the field (or heading) that was rewritten.
	Field string

	// From is the trimmed value before the change.
	From string

	// To holds the new value; split rules produce several.
	To []string
}

// String renders the change for the per-document report.
func (c Change) String() string {
	switch {
	case len(c.To) > 1:
		return fmt.Sprintf("Split %s: %q → %d separate fields: [%s]",
			c.Field, c.From, len(c.To), strings.Join(c.To, ", "))
	case len(c.To) == 1:
		return fmt.Sprintf("Fixed %s: %q → %q", c.Field, c.From, c.To[0])
	default:
		return fmt.Sprintf("Fixed %s: %q", c.Field, c.From)
	}
}
