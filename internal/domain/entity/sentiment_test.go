package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected Label
		found    bool
	}{
		{
			name:     "exact word",
			reply:    "Positive",
			expected: LabelPositive,
			found:    true,
		},
		{
			name:     "lowercase",
			reply:    "negative",
			expected: LabelNegative,
			found:    true,
		},
		{
			name:     "uppercase with punctuation",
			reply:    "  NEUTRAL.\n",
			expected: LabelNeutral,
			found:    true,
		},
		{
			name:     "embedded in a sentence",
			reply:    "The sentiment of this text is pOsItIvE overall.",
			expected: LabelPositive,
			found:    true,
		},
		{
			name:     "first match wins",
			reply:    "not negative, rather positive",
			expected: LabelNegative,
			found:    true,
		},
		{
			name:     "substring of a longer word",
			reply:    "Positively glowing",
			expected: LabelPositive,
			found:    true,
		},
		{
			name:  "no keyword",
			reply: "I cannot determine that.",
			found: false,
		},
		{
			name:  "empty reply",
			reply: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := ExtractLabel(tt.reply)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n "))
	assert.False(t, IsBlank("  ok "))
}
