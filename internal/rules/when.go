package rules

import (
	"regexp"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Ensure WhenYearRule implements the interface.
var _ driven.Rule = (*WhenYearRule)(nil)

var fourDigits = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the first four-digit sequence in value.
func ExtractYear(value string) (string, bool) {
	year := fourDigits.FindString(value)
	return year, year != ""
}

// WhenYearRule reduces when fields to the first four-digit year they contain.
// Values without a year are left alone.
type WhenYearRule struct{}

// NewWhenYearRule creates a when year rule.
func NewWhenYearRule() *WhenYearRule {
	return &WhenYearRule{}
}

// Name returns the rule name.
func (r *WhenYearRule) Name() string {
	return RuleWhenYear
}

// Stage returns the pipeline stage.
func (r *WhenYearRule) Stage() driven.Stage {
	return driven.StageWhen
}

// Apply rewrites every when field that holds more than a bare year.
func (r *WhenYearRule) Apply(text string) (string, []domain.Change) {
	var edits []domain.Edit
	var changes []domain.Change

	for _, f := range domain.FieldsNamed(domain.ParseFields(text), domain.FieldWhen) {
		from := f.Trimmed()
		year, ok := ExtractYear(from)
		if !ok || year == from {
			continue
		}
		edits = append(edits, domain.ReplaceField(f, year))
		changes = append(changes, domain.Change{
			Rule:  RuleWhenYear,
			Field: domain.FieldWhen,
			From:  from,
			To:    []string{year},
		})
	}

	return rewrite(RuleWhenYear, text, edits, changes)
}
