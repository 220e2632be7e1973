package rules

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
)

// BuilderFunc creates a Rule. Rules that do not remap categories ignore the table.
type BuilderFunc func(table domain.CategoryTable) (driven.Rule, error)

// Registry maps rule names to their builders.
// It allows rule sets to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new rule registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rule builder to the registry.
// Name should be unique and match the rule's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a rule by name.
func (r *Registry) Build(name string, table domain.CategoryTable) (driven.Rule, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrUnknownRule)
	}
	return builder(table)
}

// BuildPipeline creates a pipeline from rule names.
func (r *Registry) BuildPipeline(names []string, table domain.CategoryTable) (*Pipeline, error) {
	built := make([]driven.Rule, 0, len(names))
	for _, name := range names {
		rule, err := r.Build(name, table)
		if err != nil {
			return nil, err
		}
		built = append(built, rule)
	}
	return NewPipeline(built...)
}

// BuildVariant creates the pipeline for a named variant.
func (r *Registry) BuildVariant(name string, table domain.CategoryTable) (*Pipeline, error) {
	v, err := LookupVariant(name)
	if err != nil {
		return nil, err
	}
	p, err := r.BuildPipeline(v.Rules, table)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", name, err)
	}
	return p, nil
}

// Has returns true if a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
