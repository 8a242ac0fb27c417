package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "passes a language pair through unchanged",
			input:    "en-tr",
			expected: "en-tr",
		},
		{
			name:     "removes invalid characters",
			input:    `file<>:"/\|?*name`,
			expected: "filename",
		},
		{
			name:     "replaces whitespace with dashes",
			input:    "my backup\tfile",
			expected: "my-backup-file",
		},
		{
			name:     "trims leading and trailing dashes and dots",
			input:    " .backup. ",
			expected: "backup",
		},
		{
			name:     "returns untitled for empty",
			input:    "",
			expected: "untitled",
		},
		{
			name:     "returns untitled for only special chars",
			input:    "<>:?*",
			expected: "untitled",
		},
		{
			name:     "truncates long names",
			input:    strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}
