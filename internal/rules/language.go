package rules

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

var (
	_ driven.Rule = (*LanguageSplitRule)(nil)
	_ driven.Rule = (*LanguageFirstRule)(nil)
)

// LanguageDelimiters are tried in order; the first one present wins.
var LanguageDelimiters = []string{" and ", "/", " & ", ", ", " + ", " with ", " plus "}

var leadingConjunction = regexp.MustCompile(`(?i)^(and|&|plus|with)\s+`)

// SplitLanguages splits a compound language value on the first delimiter
// present. Pieces are trimmed, stripped of a leading conjunction and empty
// pieces are dropped. It returns nil when no delimiter is present.
func SplitLanguages(value string) []string {
	value = strings.TrimSpace(value)
	for _, delim := range LanguageDelimiters {
		if !strings.Contains(value, delim) {
			continue
		}
		var langs []string
		for _, piece := range strings.Split(value, delim) {
			piece = strings.TrimSpace(piece)
			piece = strings.TrimSpace(leadingConjunction.ReplaceAllString(piece, ""))
			if piece != "" {
				langs = append(langs, piece)
			}
		}
		return langs
	}
	return nil
}

// FirstLanguage returns the leading language of a compound value:
// the text before the first "/", else before " with ", else before " (".
func FirstLanguage(value string) string {
	text := strings.TrimSpace(value)
	for _, sep := range []string{"/", " with ", " ("} {
		if i := strings.Index(text, sep); i >= 0 {
			return strings.TrimSpace(text[:i])
		}
	}
	return text
}

// LanguageSplitRule replaces a compound language field with one field per language.
type LanguageSplitRule struct{}

// NewLanguageSplitRule creates a language split rule.
func NewLanguageSplitRule() *LanguageSplitRule {
	return &LanguageSplitRule{}
}

// Name returns the rule name.
func (r *LanguageSplitRule) Name() string {
	return RuleLanguageSplit
}

// Stage returns the pipeline stage.
func (r *LanguageSplitRule) Stage() driven.Stage {
	return driven.StageLanguage
}

// Apply splits every compound language field that yields two or more languages.
func (r *LanguageSplitRule) Apply(text string) (string, []domain.Change) {
	var edits []domain.Edit
	var changes []domain.Change

	for _, f := range domain.FieldsNamed(domain.ParseFields(text), domain.FieldLanguage) {
		langs := SplitLanguages(f.Value)
		if len(langs) < 2 {
			continue
		}
		edits = append(edits, domain.ReplaceField(f, langs...))
		changes = append(changes, domain.Change{
			Rule:  RuleLanguageSplit,
			Field: domain.FieldLanguage,
			From:  f.Trimmed(),
			To:    langs,
		})
	}

	return rewrite(RuleLanguageSplit, text, edits, changes)
}

// LanguageFirstRule reduces language fields to their first language.
type LanguageFirstRule struct{}

// NewLanguageFirstRule creates a language first-token rule.
func NewLanguageFirstRule() *LanguageFirstRule {
	return &LanguageFirstRule{}
}

// Name returns the rule name.
func (r *LanguageFirstRule) Name() string {
	return RuleLanguageFirst
}

// Stage returns the pipeline stage.
func (r *LanguageFirstRule) Stage() driven.Stage {
	return driven.StageLanguage
}

// Apply rewrites every compound language field to its first language.
func (r *LanguageFirstRule) Apply(text string) (string, []domain.Change) {
	var edits []domain.Edit
	var changes []domain.Change

	for _, f := range domain.FieldsNamed(domain.ParseFields(text), domain.FieldLanguage) {
		from := f.Trimmed()
		to := FirstLanguage(from)
		if to == from || to == "" {
			continue
		}
		edits = append(edits, domain.ReplaceField(f, to))
		changes = append(changes, domain.Change{
			Rule:  RuleLanguageFirst,
			Field: domain.FieldLanguage,
			From:  from,
			To:    []string{to},
		})
	}

	return rewrite(RuleLanguageFirst, text, edits, changes)
}
