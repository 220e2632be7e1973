package rules

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

var (
	_ driven.Rule = (*TitleDateRule)(nil)
	_ driven.Rule = (*HeadingDateRule)(nil)
)

// trailingYear matches a single-line value ending in " (YYYY)".
var trailingYear = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)$`)

// StripTitleDate removes a trailing parenthesised year from a title.
// It reports false when the title has no trailing year.
func StripTitleDate(title string) (string, bool) {
	m := trailingYear.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return title, false
	}
	stripped := strings.TrimSpace(m[1])
	if stripped == "" {
		return title, false
	}
	return stripped, true
}

// TitleDateRule strips a trailing "(YYYY)" from title fields.
type TitleDateRule struct{}

// NewTitleDateRule creates a title date rule.
func NewTitleDateRule() *TitleDateRule {
	return &TitleDateRule{}
}

// Name returns the rule name.
func (r *TitleDateRule) Name() string {
	return RuleTitleDate
}

// Stage returns the pipeline stage.
func (r *TitleDateRule) Stage() driven.Stage {
	return driven.StageTitle
}

// Apply rewrites every dated title field.
func (r *TitleDateRule) Apply(text string) (string, []domain.Change) {
	var edits []domain.Edit
	var changes []domain.Change

	for _, f := range domain.FieldsNamed(domain.ParseFields(text), domain.FieldTitle) {
		from := f.Trimmed()
		to, ok := StripTitleDate(from)
		if !ok {
			continue
		}
		edits = append(edits, domain.ReplaceField(f, to))
		changes = append(changes, domain.Change{
			Rule:  RuleTitleDate,
			Field: domain.FieldTitle,
			From:  from,
			To:    []string{to},
		})
	}

	return rewrite(RuleTitleDate, text, edits, changes)
}

// HeadingDateRule strips a trailing "(YYYY)" from the document's top-level
// heading, a "# <text> (YYYY)" line that is not a field marker.
// Only the first such heading is rewritten.
type HeadingDateRule struct{}

// NewHeadingDateRule creates a heading date rule.
func NewHeadingDateRule() *HeadingDateRule {
	return &HeadingDateRule{}
}

// Name returns the rule name.
func (r *HeadingDateRule) Name() string {
	return RuleHeadingDate
}

// Stage returns the pipeline stage.
func (r *HeadingDateRule) Stage() driven.Stage {
	return driven.StageTitle
}

// Apply rewrites the first dated heading line.
func (r *HeadingDateRule) Apply(text string) (string, []domain.Change) {
	for _, f := range domain.ParseFields(text) {
		if domain.IsKnownField(f.Name) {
			continue
		}
		to, ok := StripTitleDate(f.Name)
		if !ok {
			continue
		}

		lineEnd := strings.IndexByte(text[f.Start:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += f.Start
		}
		edit := domain.Edit{Start: f.Start, End: lineEnd, Text: "# " + to}
		change := domain.Change{
			Rule:  RuleHeadingDate,
			Field: "heading",
			From:  f.Name,
			To:    []string{to},
		}
		return rewrite(RuleHeadingDate, text, []domain.Edit{edit}, []domain.Change{change})
	}
	return text, nil
}
