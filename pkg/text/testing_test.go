package text_test

import (
	"testing"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestUnescapeTestContent(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Fenced code block",
			input:    "”””go\nfmt.Println()\n”””",
			expected: "```go\nfmt.Println()\n```",
		},
		{
			name:     "Inline code",
			input:    "Use ‛[[slug]]‛ to link",
			expected: "Use `[[slug]]` to link",
		},
		{
			name:     "Nothing to unescape",
			input:    "plain text",
			expected: "plain text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.UnescapeTestContent(tt.input))
		})
	}
}
