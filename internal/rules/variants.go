package rules

import (
	"fmt"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
)

// Variant is a named rule set.
type Variant struct {
	// Name identifies the variant on the command line and in config.
	Name string

	// Description is shown by the variants command.
	Description string

	// Rules lists the rule names to run.
	Rules []string

	// StatsField is the field whose distribution is reported after a run.
	StatsField string
}

var builtinVariants = []Variant{
	{
		Name:        domain.DefaultVariant,
		Description: "Every correction: categories, title dates, when years, split languages",
		Rules:       []string{RuleCategory, RuleTitleDate, RuleHeadingDate, RuleWhenYear, RuleLanguageSplit},
		StatsField:  domain.FieldCategory,
	},
	{
		Name:        "categories",
		Description: "Remap legacy categories to approved ones",
		Rules:       []string{RuleCategory},
		StatsField:  domain.FieldCategory,
	},
	{
		Name:        "exhibit-issues",
		Description: "Remap categories, strip heading dates, reduce when to a year",
		Rules:       []string{RuleCategory, RuleHeadingDate, RuleWhenYear},
	},
	{
		Name:        "title-dates",
		Description: "Strip trailing (YYYY) from title fields",
		Rules:       []string{RuleTitleDate},
	},
	{
		Name:        "languages",
		Description: "Reduce compound languages to the first one",
		Rules:       []string{RuleLanguageFirst},
		StatsField:  domain.FieldLanguage,
	},
	{
		Name:        "split-languages",
		Description: "Split compound languages into one field per language",
		Rules:       []string{RuleLanguageSplit},
		StatsField:  domain.FieldLanguage,
	},
}

// Variants returns the built-in variants.
func Variants() []Variant {
	out := make([]Variant, len(builtinVariants))
	copy(out, builtinVariants)
	return out
}

// LookupVariant returns the variant with the given name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range builtinVariants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownVariant)
}
