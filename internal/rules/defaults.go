package rules

import (
	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// Rule names.
const (
	RuleCategory      = "category"
	RuleTitleDate     = "title-date"
	RuleHeadingDate   = "heading-date"
	RuleWhenYear      = "when"
	RuleLanguageSplit = "language-split"
	RuleLanguageFirst = "language-first"
)

// RegisterDefaults registers all built-in rules with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(RuleCategory, buildCategory)
	r.Register(RuleTitleDate, func(domain.CategoryTable) (driven.Rule, error) { return NewTitleDateRule(), nil })
	r.Register(RuleHeadingDate, func(domain.CategoryTable) (driven.Rule, error) { return NewHeadingDateRule(), nil })
	r.Register(RuleWhenYear, func(domain.CategoryTable) (driven.Rule, error) { return NewWhenYearRule(), nil })
	r.Register(RuleLanguageSplit, func(domain.CategoryTable) (driven.Rule, error) { return NewLanguageSplitRule(), nil })
	r.Register(RuleLanguageFirst, func(domain.CategoryTable) (driven.Rule, error) { return NewLanguageFirstRule(), nil })
}

// DefaultRegistry returns a registry with every built-in rule.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildCategory validates the table before building the rule.
func buildCategory(table domain.CategoryTable) (driven.Rule, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return NewCategoryRule(table), nil
}
