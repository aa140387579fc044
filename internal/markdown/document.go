package markdown

import (
	"strings"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
)

// Document represents a Markdown document (can be a whole article body, or just a snippet)
type Document string

// Lines returns the lines present in the Markdown document
func (m Document) Lines() []string {
	return strings.Split(string(m), "\n")
}

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

func (m Document) String() string {
	return string(m)
}

// TrimSpace removes spaces at the start and end of a markdown document.
func (m Document) TrimSpace() Document {
	return Document(strings.TrimSpace(string(m)))
}

// Title returns the text of the first level-1 heading, if any.
func (m Document) Title() (string, bool) {
	for _, line := range m.Lines() {
		if ok, title, level := IsHeading(line); ok && level == 1 {
			return strings.TrimSpace(title), true
		}
	}
	return "", false
}

/*
 * Helpers
 */

// IsHeading returns if a given line is a Markdown heading and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	level := len(line) - len(strings.TrimLeft(line, "#"))
	if level > 6 {
		return false, "", 0
	}
	rest := line[level:]
	if !strings.HasPrefix(rest, " ") {
		return false, "", 0
	}
	return true, strings.TrimPrefix(rest, " "), level
}
