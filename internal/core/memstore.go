package core

import (
	"context"
	"sort"
	"sync"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/clock"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/oid"
)

var _ ArticleStore = (*MemoryStore)(nil)

// MemoryStore keeps articles in memory. Safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex
	// Articles indexed by slug, then by language
	articles map[string]map[string]*Article
}

func NewMemoryStore(articles ...*Article) (*MemoryStore, error) {
	s := &MemoryStore{
		articles: make(map[string]map[string]*Article),
	}
	for _, article := range articles {
		if err := s.SaveArticle(context.Background(), article); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *MemoryStore) SaveArticle(ctx context.Context, article *Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := clock.Now()
	translations, ok := s.articles[article.Slug]
	if !ok {
		translations = make(map[string]*Article)
		s.articles[article.Slug] = translations
	}

	// Article-level fields are shared by all translations
	for _, existing := range translations {
		article.OID = existing.OID
		article.CreatedAt = existing.CreatedAt
		break
	}
	if article.OID.IsNil() {
		article.OID = oid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	if article.Published() && article.PublishedAt.IsZero() {
		article.PublishedAt = now
	}
	article.UpdatedAt = now

	stored := *article
	translations[article.Language] = &stored
	for _, other := range translations {
		other.Status = article.Status
		other.PublishedAt = article.PublishedAt
	}
	return nil
}

func (s *MemoryStore) SelectArticleBySlug(ctx context.Context, slug, lang string) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[slug][lang]
	if !ok {
		return nil, ErrNotFound
	}
	stored := *article
	return &stored, nil
}

func (s *MemoryStore) SelectArticlesByTitleMatch(ctx context.Context, query, lang string, limit int) ([]ArticleSummary, error) {
	return s.selectPublished(lang, limit, func(a *Article) bool {
		return containsFold(a.Title, query)
	}), nil
}

func (s *MemoryStore) SelectPublishedArticles(ctx context.Context, lang string, limit int) ([]ArticleSummary, error) {
	return s.selectPublished(lang, limit, func(*Article) bool { return true }), nil
}

func (s *MemoryStore) SelectArticlesBySlugs(ctx context.Context, slugs []string, lang string) ([]ArticleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []ArticleState
	seen := make(map[string]bool)
	for _, slug := range slugs {
		translations, ok := s.articles[slug]
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		state := ArticleState{Slug: slug}
		for _, article := range translations {
			state.Status = article.Status
		}
		if article, ok := translations[lang]; ok {
			state.Title = article.Title
		}
		result = append(result, state)
	}
	return result, nil
}

func (s *MemoryStore) CountArticles(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, translations := range s.articles {
		count += len(translations)
	}
	return count, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// selectPublished mimics the SQL ordering: most recent first, then by slug.
func (s *MemoryStore) selectPublished(lang string, limit int, filter func(*Article) bool) []ArticleSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []*Article
	for _, translations := range s.articles {
		article, ok := translations[lang]
		if !ok || !article.Published() || !filter(article) {
			continue
		}
		candidates = append(candidates, article)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].PublishedAt.Equal(candidates[j].PublishedAt) {
			return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
		}
		return candidates[i].Slug < candidates[j].Slug
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var result []ArticleSummary
	for _, article := range candidates {
		result = append(result, ArticleSummary{
			Slug:    article.Slug,
			Title:   article.Title,
			Content: article.Content,
		})
	}
	return result
}
