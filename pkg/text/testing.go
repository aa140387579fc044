package text

import "strings"

// UnescapeTestContent supports content using a special character instead of backticks.
//
// Fenced code blocks are common in Markdown test fixtures but multiline strings in
// Golang cannot contain backticks. The ” and ‛ characters are accepted instead.
//
// Example: ”””go will become ```go
func UnescapeTestContent(content string) string {
	result := strings.ReplaceAll(content, "”", "`")
	result = strings.ReplaceAll(result, "‛", "`")
	return result
}
