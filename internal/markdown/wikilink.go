package markdown

import (
	"fmt"
	"regexp"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
)

// Regex to match wikilinks pointing to an article
var regexWikilink = regexp.MustCompile(`\[\[([a-z0-9-]+)\]\]`)

// Regex to match wikilinks, optionally pointing to a section of an article
var regexWikilinkReference = regexp.MustCompile(`\[\[([a-z0-9-]+)(?:#([a-z0-9-]+))?\]\]`)

// Wikilink is an internal link to another article. (ex: [[my-slug]], [[my-slug#a-section]])
type Wikilink struct {
	Slug    string
	Section string
	Line    int
}

// MatchWikilink tests if a text contains a wikilink.
func MatchWikilink(txt string) bool {
	return regexWikilinkReference.MatchString(txt)
}

// NewWikilink instantiates a new wikilink.
func NewWikilink(link string) (*Wikilink, error) {
	match := regexWikilinkReference.FindStringSubmatch(link)
	if match == nil {
		return nil, fmt.Errorf("invalid wikilink %q", link)
	}
	return &Wikilink{
		Slug:    match[1],
		Section: match[2],
	}, nil
}

// Anchored indicates if a link points to a section of the article.
func (w Wikilink) Anchored() bool {
	return w.Section != ""
}

func (w Wikilink) String() string {
	if w.Anchored() {
		return fmt.Sprintf("[[%s#%s]]", w.Slug, w.Section)
	}
	return fmt.Sprintf("[[%s]]", w.Slug)
}

// ExtractWikilinks returns the unique slugs referenced by [[slug]], in order of first appearance.
func ExtractWikilinks(content string) []string {
	var results []string
	seen := make(map[string]bool)
	for _, match := range regexWikilink.FindAllStringSubmatch(content, -1) {
		slug := match[1]
		if seen[slug] {
			continue
		}
		seen[slug] = true
		results = append(results, slug)
	}
	return results
}

/*
 * Document
 */

// WikilinkSlugs returns the unique slugs referenced by [[slug]] in the document.
func (m Document) WikilinkSlugs() []string {
	return ExtractWikilinks(string(m))
}

// WikilinkReferences returns every wikilink, anchored ones included, with their line number.
func (m Document) WikilinkReferences() []Wikilink {
	var results []Wikilink

	content := string(m)
	for _, match := range regexWikilinkReference.FindAllStringSubmatchIndex(content, -1) {
		wikilink := Wikilink{
			Slug: content[match[2]:match[3]],
			Line: text.LineNumber(content, match[0]),
		}
		if match[4] != -1 {
			wikilink.Section = content[match[4]:match[5]]
		}
		results = append(results, wikilink)
	}

	return results
}

// AnchoredWikilinkSlugs returns the unique slugs referenced by [[slug#section]] in the document.
func (m Document) AnchoredWikilinkSlugs() []string {
	var results []string
	seen := make(map[string]bool)
	for _, wikilink := range m.WikilinkReferences() {
		if !wikilink.Anchored() || seen[wikilink.Slug] {
			continue
		}
		seen[wikilink.Slug] = true
		results = append(results, wikilink.Slug)
	}
	return results
}

// ReplaceWikilinks rewrites every [[slug]] and [[slug#section]] token.
// The token is kept when fn returns false. Text outside the tokens is never modified.
func ReplaceWikilinks(content string, fn func(Wikilink) (string, bool)) string {
	return regexWikilinkReference.ReplaceAllStringFunc(content, func(token string) string {
		match := regexWikilinkReference.FindStringSubmatch(token)
		replacement, ok := fn(Wikilink{Slug: match[1], Section: match[2]})
		if !ok {
			return token
		}
		return replacement
	})
}
