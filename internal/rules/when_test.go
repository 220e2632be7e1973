package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhenYearRule(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     string
		wantDiff bool
	}{
		{"year inside prose", "circa 1975, estimated", "1975", true},
		{"range keeps first year", "1969-1972", "1969", true},
		{"exact year", "1975", "1975", false},
		{"padded exact year", "  1975  ", "  1975  ", false},
		{"no digits", "unknown", "unknown", false},
		{"too few digits", "the '70s", "the '70s", false},
		{"longer digit run", "19755", "1975", true},
	}

	rule := NewWhenYearRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "# when\n" + tt.value + "\n\n# author\nAda\n"

			out, changes := rule.Apply(text)

			if !tt.wantDiff {
				assert.Empty(t, changes)
				assert.Equal(t, text, out)
				return
			}
			require.Len(t, changes, 1)
			assert.Equal(t, "# when\n"+tt.want+"\n\n# author\nAda\n", out)
		})
	}
}

func TestWhenYearRule_Idempotent(t *testing.T) {
	rule := NewWhenYearRule()

	out, _ := rule.Apply("# when\nDesigned in 1962, shipped 1964\n")
	again, changes := rule.Apply(out)

	assert.Empty(t, changes)
	assert.Equal(t, "# when\n1962\n", again)
}

func TestExtractYear(t *testing.T) {
	year, ok := ExtractYear("circa 1975")
	assert.True(t, ok)
	assert.Equal(t, "1975", year)

	_, ok = ExtractYear("unknown")
	assert.False(t, ok)
}
