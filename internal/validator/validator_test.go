package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugRegex(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		// Valid slugs
		{"simple lowercase", "wolves", true},
		{"with single hyphen", "thunder-squad", true},
		{"with multiple hyphens", "portland-thunder-squad", true},
		{"with numbers", "squad2026", true},
		{"numbers and hyphens", "squad-2026-spring", true},
		{"single character", "a", true},
		{"single digit", "1", true},
		{"starts with number", "123abc", true},
		{"ends with number", "abc123", true},
		{"alternating", "a1b2c3", true},

		// Invalid slugs
		{"uppercase letter", "Wolves", false},
		{"mixed case", "ThunderSquad", false},
		{"leading hyphen", "-thunder", false},
		{"trailing hyphen", "thunder-", false},
		{"consecutive hyphens", "thunder--squad", false},
		{"multiple consecutive hyphens", "thunder---squad", false},
		{"space", "thunder squad", false},
		{"empty string", "", false},
		{"special char @", "thunder@squad", false},
		{"special char !", "thunder!", false},
		{"underscore", "thunder_squad", false},
		{"dot", "thunder.squad", false},
		{"only hyphen", "-", false},
		{"only hyphens", "---", false},
		{"hyphen between hyphens", "a--b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugRegex.MatchString(tt.slug)
			assert.Equal(t, tt.valid, result, "slug: %q", tt.slug)
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	// This test verifies that RegisterCustomValidators doesn't panic
	// The actual validation is tested through integration tests
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
