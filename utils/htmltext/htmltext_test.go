package htmltext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictSanitize(t *testing.T) {
	assert.Equal(t, "https://example.com/article", StrictSanitize("https://example.com/article"))
	assert.Equal(t, "hello", StrictSanitize("<script>x()</script><b>hello</b>"))
}

func TestSanitizeHTML_RemovesScripts(t *testing.T) {
	out := SanitizeHTML(`<p>keep</p><script>alert(1)</script>`)
	assert.Contains(t, out, "<p>keep</p>")
	assert.NotContains(t, out, "script")
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "already plain",
			expected: "already plain",
		},
		{
			name:     "tags are stripped",
			input:    "<p>one <strong>two</strong></p>",
			expected: "one two",
		},
		{
			name:     "scripts do not count as text",
			input:    "<p>visible</p><script>hidden()</script>",
			expected: "visible",
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractText(tt.input))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("<p>one two three</p>"))
}

func TestReadingTime(t *testing.T) {
	content := "<p>" + strings.Repeat("word ", 600) + "</p>"

	assert.Equal(t, 3, ReadingTime(content, 200))
	assert.Equal(t, 0, ReadingTime("", 200))
	assert.Equal(t, 0, ReadingTime(content, 0))
}
