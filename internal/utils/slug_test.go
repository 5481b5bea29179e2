package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and hyphenates",
			input:    "Sri Guru Granth Sahib Ji",
			expected: "sri-guru-granth-sahib-ji",
		},
		{
			name:     "drops punctuation",
			input:    "Bhai Gurdas Ji's Vaaran",
			expected: "bhai-gurdas-jis-vaaran",
		},
		{
			name:     "collapses hyphen runs",
			input:    "Dasam -- Granth",
			expected: "dasam-granth",
		},
		{
			name:     "trims leading and trailing hyphens",
			input:    " -Sarabloh Granth- ",
			expected: "sarabloh-granth",
		},
		{
			name:     "falls back for non-latin only input",
			input:    "ਸ੍ਰੀ ਗੁਰੂ",
			expected: "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slug(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
