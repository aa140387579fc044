package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"golang.org/x/text/cases"
)

const (
	// DefaultLanguage is used when neither the request nor the configuration specifies one.
	DefaultLanguage = "ja"

	DefaultSuggestionLimit = 20
	MaxSuggestionLimit     = 50
	// Maximum number of articles scanned to find matching headings
	SuggestionScanLimit = 100
	// Headings deeper than this level are never suggested
	SuggestionHeadingMaxLevel = 3
)

type SuggestionType string

const (
	SuggestionArticle SuggestionType = "article"
	SuggestionHeading SuggestionType = "heading"
)

// Suggestion is a candidate target for a wikilink.
// Heading fields are only set for heading suggestions.
type Suggestion struct {
	Type         SuggestionType `json:"type"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	HeadingLevel int            `json:"headingLevel,omitempty"`
	HeadingID    string         `json:"headingId,omitempty"`
	ArticleTitle string         `json:"articleTitle,omitempty"`
}

// Wikilink returns the syntax to insert in the editor.
func (s Suggestion) Wikilink() string {
	if s.Type == SuggestionHeading {
		return fmt.Sprintf("[[%s#%s]]", s.Slug, s.HeadingID)
	}
	return fmt.Sprintf("[[%s]]", s.Slug)
}

type SuggestionQuery struct {
	Query    string
	Language string
	Limit    int
}

type SuggestionResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	// Always false. Callers may cache results.
	FromCache bool `json:"fromCache"`
}

// SuggestionService searches articles and headings matching a partial query.
type SuggestionService struct {
	store ContentStore

	language     string
	defaultLimit int
	maxLimit     int
	scanLimit    int
}

func NewSuggestionService(store ContentStore) *SuggestionService {
	return &SuggestionService{
		store:        store,
		language:     DefaultLanguage,
		defaultLimit: DefaultSuggestionLimit,
		maxLimit:     MaxSuggestionLimit,
		scanLimit:    SuggestionScanLimit,
	}
}

// Configure overrides the defaults using the [suggestions] section.
func (s *SuggestionService) Configure(config ConfigFile) *SuggestionService {
	if config.Core.Language != "" {
		s.language = config.Core.Language
	}
	if config.Suggestions.Limit > 0 {
		s.defaultLimit = config.Suggestions.Limit
	}
	if config.Suggestions.MaxLimit > 0 {
		s.maxLimit = config.Suggestions.MaxLimit
	}
	if config.Suggestions.ScanLimit > 0 {
		s.scanLimit = config.Suggestions.ScanLimit
	}
	return s
}

// Search returns article suggestions (title matches) completed by heading suggestions.
func (s *SuggestionService) Search(ctx context.Context, q SuggestionQuery) (*SuggestionResult, error) {
	// Whitespace-only queries are empty but non-empty queries are searched as typed
	if strings.TrimSpace(q.Query) == "" {
		return nil, fmt.Errorf("%w: missing query", ErrInvalidQuery)
	}
	query := q.Query
	lang := q.Language
	if lang == "" {
		lang = s.language
	}
	limit := s.normalizeLimit(q.Limit)

	suggestions := make([]Suggestion, 0, limit)

	articles, err := s.store.SelectArticlesByTitleMatch(ctx, query, lang, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to search titles: %w", ErrStore, err)
	}
	for _, article := range articles {
		suggestions = append(suggestions, Suggestion{
			Type:  SuggestionArticle,
			Slug:  article.Slug,
			Title: article.Title,
		})
	}

	if len(suggestions) < limit {
		candidates, err := s.store.SelectPublishedArticles(ctx, lang, s.scanLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to search headings: %w", ErrStore, err)
		}
		suggestions = appendHeadingSuggestions(suggestions, candidates, query, limit)
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	CurrentLogger().Debugf("Found %d suggestion(s) for %q in %q", len(suggestions), query, lang)

	return &SuggestionResult{
		Suggestions: suggestions,
		FromCache:   false,
	}, nil
}

func (s *SuggestionService) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// appendHeadingSuggestions stops as soon as limit suggestions are collected.
func appendHeadingSuggestions(suggestions []Suggestion, articles []ArticleSummary, query string, limit int) []Suggestion {
	for _, article := range articles {
		for _, heading := range markdown.ExtractHeadings(article.Content.String(), SuggestionHeadingMaxLevel) {
			if len(suggestions) >= limit {
				return suggestions
			}
			if !containsFold(heading.Text, query) {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Type:         SuggestionHeading,
				Slug:         article.Slug,
				Title:        heading.Text,
				HeadingLevel: heading.Level,
				HeadingID:    heading.ID,
				ArticleTitle: article.Title,
			})
		}
		if len(suggestions) >= limit {
			return suggestions
		}
	}
	return suggestions
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	caser := cases.Fold()
	return strings.Contains(caser.String(s), caser.String(substr))
}
