package driven

import "github.com/custodia-labs/exhibitfix/internal/core/domain"

// Stage orders rules within a pipeline. Rules run in ascending stage order,
// whatever order they were configured in.
type Stage int

// Pipeline stages.
const (
	StageCategory Stage = iota + 1
	StageTitle
	StageWhen
	StageLanguage
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageCategory:
		return "category"
	case StageTitle:
		return "title"
	case StageWhen:
		return "when"
	case StageLanguage:
		return "language"
	default:
		return "unknown"
	}
}

// Rule is a single field correction.
type Rule interface {
	// Name returns the rule name for logging and configuration.
	Name() string

	// Stage returns where the rule runs in a pipeline.
	Stage() Stage

	// Apply returns text with the rule's corrections and the changes made.
	// A rule that does not match returns text unchanged and no changes.
	Apply(text string) (string, []domain.Change)
}

// NormaliseResult is the outcome of running a rule set over one document.
type NormaliseResult struct {
	// Text is the possibly modified document text.
	Text string

	// Changed is true when any rule matched.
	Changed bool

	// Changes lists each applied correction in order.
	Changes []domain.Change
}

// Log returns the human-readable change log.
func (r NormaliseResult) Log() []string {
	log := make([]string, len(r.Changes))
	for i, c := range r.Changes {
		log[i] = c.String()
	}
	return log
}

// RuleSet normalises a document's text.
type RuleSet interface {
	// Normalise applies every rule in order.
	Normalise(text string) NormaliseResult

	// Names returns the rule names in execution order.
	Names() []string
}
