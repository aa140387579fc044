package core

import "context"

// ContentStore exposes the queries required by wiki-link resolution and suggestions.
type ContentStore interface {
	// SelectArticlesByTitleMatch returns published articles whose title contains the query (case-insensitive).
	SelectArticlesByTitleMatch(ctx context.Context, query, lang string, limit int) ([]ArticleSummary, error)
	// SelectPublishedArticles returns at most limit published articles.
	SelectPublishedArticles(ctx context.Context, lang string, limit int) ([]ArticleSummary, error)
	// SelectArticlesBySlugs returns the existing articles among slugs, whatever their status.
	SelectArticlesBySlugs(ctx context.Context, slugs []string, lang string) ([]ArticleState, error)
}

// ArticleStore is a ContentStore that also manages articles.
type ArticleStore interface {
	ContentStore

	// SelectArticleBySlug returns ErrNotFound when no translation exists.
	SelectArticleBySlug(ctx context.Context, slug, lang string) (*Article, error)
	// SaveArticle inserts or updates an article and its translation.
	SaveArticle(ctx context.Context, article *Article) error
	// CountArticles returns the number of translations.
	CountArticles(ctx context.Context) (int, error)
	Close() error
}
