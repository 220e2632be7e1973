package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchResult_Counts(t *testing.T) {
	result := &BatchResult{
		Files: []FileResult{
			{Path: "a.md", Changed: true, Written: true},
			{Path: "b.md"},
			{Path: "c.md", Err: errors.New("permission denied")},
			{Path: "d.md", Changed: true},
		},
	}

	assert.Equal(t, 4, result.Total())
	assert.Equal(t, 2, result.ChangedCount())
	assert.Equal(t, 1, result.FailedCount())
}

func TestChange_String(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		want   string
	}{
		{
			name:   "single value",
			change: Change{Field: "category", From: "Historical", To: []string{"Software & Computing"}},
			want:   `Fixed category: "Historical" → "Software & Computing"`,
		},
		{
			name:   "split",
			change: Change{Field: "language", From: "C and Assembly", To: []string{"C", "Assembly"}},
			want:   `Split language: "C and Assembly" → 2 separate fields: [C, Assembly]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.change.String())
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), Config{}.WithDefaults())
	})

	t.Run("custom mapping keeps approved defaults", func(t *testing.T) {
		cfg := Config{
			Dir:        "./collection",
			Categories: CategoryTable{Mapping: map[string]string{"Legacy": "Educational"}},
		}.WithDefaults()

		assert.Equal(t, "./collection", cfg.Dir)
		assert.Equal(t, DefaultExtension, cfg.Extension)
		assert.Equal(t, DefaultVariant, cfg.Variant)
		assert.Equal(t, "custom", cfg.Categories.Version)
		assert.Equal(t, DefaultCategoryTable().Approved, cfg.Categories.Approved)
		assert.Equal(t, map[string]string{"Legacy": "Educational"}, cfg.Categories.Mapping)
	})
}
