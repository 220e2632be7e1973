package rules

import (
	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Ensure CategoryRule implements the interface.
var _ driven.Rule = (*CategoryRule)(nil)

// CategoryRule remaps category values found in the table's mapping.
// A value matches only when it equals a key exactly, so "Security" never
// matches "Security Research".
type CategoryRule struct {
	table domain.CategoryTable
}

// NewCategoryRule creates a category rule for the given table.
func NewCategoryRule(table domain.CategoryTable) *CategoryRule {
	return &CategoryRule{table: table}
}

// Name returns the rule name.
func (r *CategoryRule) Name() string {
	return RuleCategory
}

// Stage returns the pipeline stage.
func (r *CategoryRule) Stage() driven.Stage {
	return driven.StageCategory
}

// Apply rewrites each mapped category field.
func (r *CategoryRule) Apply(text string) (string, []domain.Change) {
	var edits []domain.Edit
	var changes []domain.Change

	for _, f := range domain.FieldsNamed(domain.ParseFields(text), domain.FieldCategory) {
		from := f.Trimmed()
		to, ok := r.table.Lookup(from)
		if !ok || to == from {
			continue
		}
		edits = append(edits, domain.ReplaceField(f, to))
		changes = append(changes, domain.Change{
			Rule:  RuleCategory,
			Field: domain.FieldCategory,
			From:  from,
			To:    []string{to},
		})
	}

	return rewrite(RuleCategory, text, edits, changes)
}
