package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.Names())
	assert.False(t, r.Has(RuleCategory))
}

func TestRegisterDefaults(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{
		RuleCategory, RuleHeadingDate, RuleLanguageFirst, RuleLanguageSplit, RuleTitleDate, RuleWhenYear,
	}, r.Names())

	for _, name := range r.Names() {
		rule, err := r.Build(name, domain.DefaultCategoryTable())
		require.NoError(t, err, name)
		assert.Equal(t, name, rule.Name())
	}
}

func TestRegistry_BuildUnknown(t *testing.T) {
	_, err := DefaultRegistry().Build("spellcheck", domain.DefaultCategoryTable())

	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestRegistry_BuildCategoryValidatesTable(t *testing.T) {
	table := domain.CategoryTable{
		Approved: []string{"Educational"},
		Mapping:  map[string]string{"Historical": "Software & Computing"},
	}

	_, err := DefaultRegistry().Build(RuleCategory, table)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("when", func(domain.CategoryTable) (driven.Rule, error) {
		return NewWhenYearRule(), nil
	})

	assert.True(t, r.Has("when"))
	p, err := r.BuildPipeline([]string{"when"}, domain.CategoryTable{})
	require.NoError(t, err)
	assert.Equal(t, []string{RuleWhenYear}, p.Names())
}

func TestRegistry_BuildPipelineConflict(t *testing.T) {
	_, err := DefaultRegistry().BuildPipeline(
		[]string{RuleLanguageSplit, RuleLanguageFirst}, domain.DefaultCategoryTable())

	assert.ErrorIs(t, err, domain.ErrConflictingRules)
}

func TestRegistry_BuildVariant(t *testing.T) {
	r := DefaultRegistry()

	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			p, err := r.BuildVariant(v.Name, domain.DefaultCategoryTable())
			require.NoError(t, err)
			assert.ElementsMatch(t, v.Rules, p.Names())
		})
	}

	_, err := r.BuildVariant("everything", domain.DefaultCategoryTable())
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestVariants(t *testing.T) {
	variants := Variants()

	require.NotEmpty(t, variants)
	assert.Equal(t, domain.DefaultVariant, variants[0].Name)

	v, err := LookupVariant("split-languages")
	require.NoError(t, err)
	assert.Equal(t, []string{RuleLanguageSplit}, v.Rules)
	assert.Equal(t, domain.FieldLanguage, v.StatsField)

	variants[0].Name = "mutated"
	_, err = LookupVariant(domain.DefaultVariant)
	assert.NoError(t, err, "Variants returns a copy")
}
