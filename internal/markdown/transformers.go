package markdown

import (
	"regexp"
	"strings"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
)

// Transformer applies changes on a Markdown document
type Transformer func(document Document) (Document, error)

// Transform applies transformers successively to create a new Markdown document
func (m Document) Transform(transformers ...Transformer) (Document, error) {
	result := m
	for _, transformer := range transformers {
		resultTransformed, err := transformer(result)
		if err != nil {
			return m, err
		}
		result = resultTransformed
	}
	return result, nil
}

// MustTransform is similar to Transform but does not expect an error
func (m Document) MustTransform(transformers ...Transformer) Document {
	result, err := m.Transform(transformers...)
	if err != nil {
		panic(err)
	}
	return result
}

/*
 * Transformers
 */

var (
	regexHTMLComment               = regexp.MustCompile(`(?s)<!--.+?-->`)
	regexMarkdownUnofficialComment = regexp.MustCompile(`(?s)<!---.+?--->`)
)

// StripHTMLComments transforms a Markdown document to remove HTML comments
func StripHTMLComments() Transformer {
	return func(document Document) (Document, error) {
		md := regexHTMLComment.ReplaceAllString(string(document), "")
		return Document(md).TrimSpace(), nil
	}
}

// StripMarkdownUnofficialComments transforms a Markdown document to remove HTML-like, mostly-official Markdown comments
// (ex: <!--- draft notes --->)
func StripMarkdownUnofficialComments() Transformer {
	return func(document Document) (Document, error) {
		md := regexMarkdownUnofficialComment.ReplaceAllString(string(document), "")
		return Document(md).TrimSpace(), nil
	}
}

// StripTopHeading removes the level-1 heading when the document starts with it.
// The article title is stored apart from its body.
func StripTopHeading() Transformer {
	return func(document Document) (Document, error) {
		lines := document.Lines()
		for i, line := range lines {
			if text.IsBlank(line) {
				continue
			}
			if ok, _, level := IsHeading(line); ok && level == 1 {
				return Document(strings.Join(lines[i+1:], "\n")).TrimSpace(), nil
			}
			break
		}
		return document, nil
	}
}

// SquashBlankLines removes blank lines when multiple successive blank lines are present
func SquashBlankLines() Transformer {
	return func(document Document) (Document, error) {
		return Document(text.SquashBlankLines(string(document))), nil
	}
}
