package rules

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.RuleSet = (*Pipeline)(nil)

// exclusiveStages may hold at most one rule per pipeline.
var exclusiveStages = map[driven.Stage]bool{
	driven.StageLanguage: true,
}

// Pipeline chains rules and runs them in stage order.
type Pipeline struct {
	rules []driven.Rule
}

// NewPipeline creates a pipeline from the given rules. Rules are ordered by
// stage; rules sharing a stage keep the order provided.
// Returns domain.ErrConflictingRules if two rules claim an exclusive stage.
func NewPipeline(rules ...driven.Rule) (*Pipeline, error) {
	p := &Pipeline{}
	for _, r := range rules {
		if err := p.Add(r); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add inserts a rule at its stage position.
func (p *Pipeline) Add(rule driven.Rule) error {
	if rule == nil {
		return fmt.Errorf("rule is nil: %w", domain.ErrInvalidInput)
	}
	if exclusiveStages[rule.Stage()] {
		for _, existing := range p.rules {
			if existing.Stage() == rule.Stage() {
				return fmt.Errorf("%s and %s: %w", existing.Name(), rule.Name(), domain.ErrConflictingRules)
			}
		}
	}

	p.rules = append(p.rules, rule)
	sort.SliceStable(p.rules, func(i, j int) bool {
		return p.rules[i].Stage() < p.rules[j].Stage()
	})
	return nil
}

// Normalise runs the document text through every rule in order.
func (p *Pipeline) Normalise(text string) driven.NormaliseResult {
	result := driven.NormaliseResult{Text: text}

	for _, rule := range p.rules {
		next, changes := rule.Apply(result.Text)
		if len(changes) == 0 {
			continue
		}
		for _, c := range changes {
			logger.Debug("%s: %s", rule.Name(), c)
		}
		result.Text = next
		result.Changes = append(result.Changes, changes...)
	}

	result.Changed = len(result.Changes) > 0
	return result
}

// Names returns the rule names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.Name()
	}
	return names
}

// Len returns the number of rules in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.rules)
}

// rewrite applies edits for a rule. On a bad edit the text is returned
// unchanged and the rule contributes nothing.
func rewrite(rule, text string, edits []domain.Edit, changes []domain.Change) (string, []domain.Change) {
	if len(edits) == 0 {
		return text, nil
	}
	out, err := domain.ApplyEdits(text, edits)
	if err != nil {
		logger.Warn("rule %s skipped: %v", rule, err)
		return text, nil
	}
	return out, changes
}
