package core

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/oid"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ParseArticleStatus converts a front matter value. Empty values default to draft.
func ParseArticleStatus(value string) (ArticleStatus, error) {
	switch ArticleStatus(value) {
	case "":
		return StatusDraft, nil
	case StatusDraft, StatusPublished, StatusArchived:
		return ArticleStatus(value), nil
	}
	return "", fmt.Errorf("unknown article status %q", value)
}

// Article is a single translation of an article.
type Article struct {
	OID         oid.OID
	Slug        string
	Status      ArticleStatus
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Translation
	Language string
	Title    string
	Content  markdown.Document
}

func (a *Article) Published() bool {
	return a.Status == StatusPublished
}

// Path returns the site path of the article (ex: /ja/articles/go-tips).
func (a *Article) Path() string {
	return linkpattern.ArticleURL(a.Language, a.Slug)
}

func (a *Article) String() string {
	return fmt.Sprintf("article %q (%s, %s)", a.Slug, a.Language, a.Status)
}

// Validate checks the article can be saved. A missing status defaults to draft.
func (a *Article) Validate() error {
	if !slug.IsSlug(a.Slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, a.Slug)
	}
	status, err := ParseArticleStatus(string(a.Status))
	if err != nil {
		return err
	}
	a.Status = status
	if a.Language == "" {
		return fmt.Errorf("%w: missing language for %q", ErrInvalidLanguage, a.Slug)
	}
	return nil
}

// ArticleSummary is the projection used by suggestion searches.
type ArticleSummary struct {
	Slug    string
	Title   string
	Content markdown.Document
}

// ArticleState is the projection used to resolve wiki-links.
// Title is empty when no translation exists for the requested language.
type ArticleState struct {
	Slug   string
	Title  string
	Status ArticleStatus
}
