package linkpattern

import (
	"fmt"
	"regexp"
)

var regexArticlePath = regexp.MustCompile(`^/([a-z]{2})/articles/([a-z0-9-]+)(?:#([a-z0-9-]+))?$`)

// ArticlePath is an internal link to an article, optionally to one of its headings.
type ArticlePath struct {
	Language  string
	Slug      string
	HeadingID string
}

// ParseArticlePath recognizes links like /ja/articles/my-slug#heading-id.
func ParseArticlePath(url string) (ArticlePath, bool) {
	match := regexArticlePath.FindStringSubmatch(url)
	if match == nil {
		return ArticlePath{}, false
	}
	return ArticlePath{
		Language:  match[1],
		Slug:      match[2],
		HeadingID: match[3],
	}, true
}

// ArticleURL returns the path of an article in the given language.
func ArticleURL(lang, slug string) string {
	return fmt.Sprintf("/%s/articles/%s", lang, slug)
}

// String returns the path, with the anchor when present.
func (p ArticlePath) String() string {
	url := ArticleURL(p.Language, p.Slug)
	if p.HeadingID != "" {
		url += "#" + p.HeadingID
	}
	return url
}
