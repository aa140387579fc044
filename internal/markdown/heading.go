package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// DefaultHeadingMaxLevel is the deepest heading level extracted when none is given.
const DefaultHeadingMaxLevel = 3

// Heading is an ATX heading found in a document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

func (h Heading) String() string {
	return fmt.Sprintf("%s %s", strings.Repeat("#", h.Level), h.Text)
}

// One compiled regex per max level.
var regexHeadings = func() [7]*regexp.Regexp {
	var result [7]*regexp.Regexp
	for level := 1; level <= 6; level++ {
		result[level] = regexp.MustCompile(fmt.Sprintf(`(?m)^(#{1,%d})\s+(.+)$`, level))
	}
	return result
}()

// ExtractHeadings searches for headings up to maxLevel in document order.
// maxLevel is clamped to 1..6.
func ExtractHeadings(content string, maxLevel int) []Heading {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if maxLevel > 6 {
		maxLevel = 6
	}

	var results []Heading
	for _, match := range regexHeadings[maxLevel].FindAllStringSubmatch(content, -1) {
		text := strings.TrimSpace(match[2])
		results = append(results, Heading{
			Level: len(match[1]),
			Text:  text,
			ID:    HeadingID(text),
		})
	}
	return results
}

// Headings returns the headings of the document up to maxLevel.
func (m Document) Headings(maxLevel int) []Heading {
	return ExtractHeadings(string(m), maxLevel)
}

// HeadingID generates the anchor of a heading.
// Ex: "Section A" => "section-a"
func HeadingID(text string) string {
	var sb strings.Builder
	pendingSeparator := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSeparator && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingSeparator = false
			sb.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingSeparator = true
		}
	}
	return sb.String()
}
