package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/internal/plugins"
)

// ArticleDetail is a published article ready to be displayed.
type ArticleDetail struct {
	Slug        string             `json:"slug"`
	Language    string             `json:"language"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	HTML        string             `json:"html"`
	Headings    []markdown.Heading `json:"headings"`
	PublishedAt time.Time          `json:"publishedAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ArticleService retrieves articles with their wikilinks converted.
type ArticleService struct {
	store    ArticleStore
	resolver *WikilinkResolver
}

func NewArticleService(store ArticleStore) *ArticleService {
	return &ArticleService{
		store:    store,
		resolver: NewWikilinkResolver(store),
	}
}

// GetArticle returns ErrNotFound when the article does not exist or is not published.
func (s *ArticleService) GetArticle(ctx context.Context, slug, lang string) (*ArticleDetail, error) {
	article, err := s.store.SelectArticleBySlug(ctx, slug, lang)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %q (%s)", ErrNotFound, slug, lang)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to load article %q: %w", ErrStore, slug, err)
	}
	if !article.Published() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotFound, slug, article.Status)
	}

	content, err := s.resolver.ConvertWikilinks(ctx, article.Content.String(), lang)
	if err != nil {
		return nil, err
	}

	return &ArticleDetail{
		Slug:        article.Slug,
		Language:    article.Language,
		Title:       article.Title,
		Content:     content,
		HTML:        renderMarkdown(content),
		Headings:    article.Content.Headings(markdown.DefaultHeadingMaxLevel),
		PublishedAt: article.PublishedAt,
		UpdatedAt:   article.UpdatedAt,
	}, nil
}

// Render converts the wikilinks and returns the HTML after the plugin pipeline.
func (s *ArticleService) Render(ctx context.Context, content, lang string) (string, error) {
	converted, err := s.resolver.ConvertWikilinks(ctx, content, lang)
	if err != nil {
		return "", err
	}
	return renderMarkdown(converted), nil
}

func renderMarkdown(content string) string {
	doc := plugins.Process([]byte(content))
	return string(plugins.RenderHTML(doc))
}
