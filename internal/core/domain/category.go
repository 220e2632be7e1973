package domain

import (
	"fmt"
	"sort"
)

// CategoryTableVersion identifies the built-in category table.
const CategoryTableVersion = "final"

// CategoryTable maps legacy or disallowed category values to approved ones.
type CategoryTable struct {
	// Version labels the table so reports can say which mapping ran.
	Version string `toml:"version"`

	// Approved is the set of canonical category values.
	Approved []string `toml:"approved"`

	// Mapping maps a legacy value to its approved replacement.
	Mapping map[string]string `toml:"mapping"`
}

// DefaultCategoryTable returns the authoritative category table.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		Version: CategoryTableVersion,
		Approved: []string{
			"Mission-Critical",
			"Cyber Security",
			"Educational",
			"Software & Computing",
		},
		Mapping: map[string]string{
			"Historical":        "Software & Computing",
			"Numeric":           "Software & Computing",
			"Security":          "Cyber Security",
			"Computing History": "Software & Computing",
			"Integration":       "Software & Computing",
		},
	}
}

// Lookup returns the replacement for value, if value is a mapped key.
func (t CategoryTable) Lookup(value string) (string, bool) {
	to, ok := t.Mapping[value]
	return to, ok
}

// IsApproved reports whether value is an approved category.
// An empty approved set approves everything.
func (t CategoryTable) IsApproved(value string) bool {
	if len(t.Approved) == 0 {
		return true
	}
	for _, a := range t.Approved {
		if a == value {
			return true
		}
	}
	return false
}

// Keys returns the mapped keys in sorted order.
func (t CategoryTable) Keys() []string {
	keys := make([]string, 0, len(t.Mapping))
	for k := range t.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every mapping is non-empty and lands on an approved value.
func (t CategoryTable) Validate() error {
	for _, from := range t.Keys() {
		to := t.Mapping[from]
		if from == "" || to == "" {
			return fmt.Errorf("category mapping %q → %q: %w", from, to, ErrInvalidInput)
		}
		if !t.IsApproved(to) {
			return fmt.Errorf("category mapping %q → %q: target not approved: %w", from, to, ErrInvalidInput)
		}
	}
	return nil
}
