package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records the lookups made by the resolver.
type countingStore struct {
	ContentStore
	calls [][]string
	err   error
}

func (s *countingStore) SelectArticlesBySlugs(ctx context.Context, slugs []string, lang string) ([]ArticleState, error) {
	s.calls = append(s.calls, slugs)
	if s.err != nil {
		return nil, s.err
	}
	return s.ContentStore.SelectArticlesBySlugs(ctx, slugs, lang)
}

func newWikilinkStore(t *testing.T) *countingStore {
	store, err := NewMemoryStore(
		NewPublishedArticle("a", "ja", "A", "# A"),
		NewPublishedArticle("go-tips", "ja", "Go のコツ", "# Go\n## Errors"),
		NewPublishedArticle("go-tips", "en", "Go tips", "# Go\n## Errors"),
		&Article{Slug: "draft", Status: StatusDraft, Language: "ja", Title: "Draft"},
		NewPublishedArticle("go-123", "ja", `Go [1.23] \ notes`, ""),
		&Article{Slug: "untranslated", Status: StatusPublished, Language: "en", Title: "English only"},
	)
	require.NoError(t, err)
	return &countingStore{ContentStore: store}
}

func TestFetchArticleInfoBySlugs(t *testing.T) {
	ctx := context.Background()

	t.Run("No slugs", func(t *testing.T) {
		store := newWikilinkStore(t)
		infos, err := NewWikilinkResolver(store).FetchArticleInfoBySlugs(ctx, nil, "ja")
		require.NoError(t, err)
		assert.NotNil(t, infos)
		assert.Empty(t, infos)
		assert.Empty(t, store.calls) // No query
	})

	t.Run("Mixed slugs", func(t *testing.T) {
		store := newWikilinkStore(t)
		infos, err := NewWikilinkResolver(store).FetchArticleInfoBySlugs(ctx, []string{"a", "draft", "missing", "untranslated"}, "ja")
		require.NoError(t, err)
		require.Len(t, store.calls, 1) // Batched
		require.Len(t, infos, 4)

		require.NotNil(t, infos["a"].Title)
		assert.Equal(t, "A", *infos["a"].Title)
		assert.Equal(t, "/ja/articles/a", infos["a"].URL)

		for _, slug := range []string{"draft", "missing", "untranslated"} {
			assert.Nil(t, infos[slug].Title, slug)
			assert.Equal(t, "/ja/articles/"+slug, infos[slug].URL)
			assert.Equal(t, slug, infos[slug].Slug)
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		store := newWikilinkStore(t)
		store.err = errors.New("connection lost")
		_, err := NewWikilinkResolver(store).FetchArticleInfoBySlugs(ctx, []string{"a"}, "ja")
		assert.ErrorIs(t, err, ErrStore)
		assert.False(t, IsClientError(err))
	})
}

func TestConvertWikilinks(t *testing.T) {
	ctx := context.Background()

	var tests = []struct {
		name     string
		content  string // input
		lang     string // input
		expected string // output
	}{
		{
			name:     "No wikilink",
			content:  "# Title\n\nSome [link](https://example.com) and [brackets].",
			lang:     "ja",
			expected: "# Title\n\nSome [link](https://example.com) and [brackets].",
		},
		{
			name:     "Prefix and suffix preserved",
			content:  "prefix [[a]] suffix",
			lang:     "ja",
			expected: "prefix [A](/ja/articles/a) suffix",
		},
		{
			name:     "Unresolved slug",
			content:  "[[missing]]",
			lang:     "ja",
			expected: "[[missing]]",
		},
		{
			name:     "Draft article",
			content:  "See [[draft]].",
			lang:     "ja",
			expected: "See [[draft]].",
		},
		{
			name:     "Repeated slug",
			content:  "[[a]] then [[a]] again",
			lang:     "ja",
			expected: "[A](/ja/articles/a) then [A](/ja/articles/a) again",
		},
		{
			name:     "Translation",
			content:  "Read [[go-tips]]",
			lang:     "en",
			expected: "Read [Go tips](/en/articles/go-tips)",
		},
		{
			name:     "Anchored",
			content:  "Read [[go-tips#errors]]",
			lang:     "ja",
			expected: "Read [Go のコツ](/ja/articles/go-tips#errors)",
		},
		{
			name:     "Brackets in title",
			content:  "[[go-123]]",
			lang:     "ja",
			expected: `[Go \[1.23\] \\ notes](/ja/articles/go-123)`,
		},
		{
			name:     "Adjacent brackets",
			content:  "[[[a]]] [[a]][[missing]] [[A]]",
			lang:     "ja",
			expected: "[[A](/ja/articles/a)] [A](/ja/articles/a)[[missing]] [[A]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewWikilinkResolver(newWikilinkStore(t))
			actual, err := resolver.ConvertWikilinks(ctx, tt.content, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	t.Run("No query without wikilinks", func(t *testing.T) {
		store := newWikilinkStore(t)
		_, err := NewWikilinkResolver(store).ConvertWikilinks(ctx, "[[Not A Slug]]", "ja")
		require.NoError(t, err)
		assert.Empty(t, store.calls)
	})

	t.Run("Store failure", func(t *testing.T) {
		store := newWikilinkStore(t)
		store.err = errors.New("connection lost")
		_, err := NewWikilinkResolver(store).ConvertWikilinks(ctx, "[[a]]", "ja")
		assert.ErrorIs(t, err, ErrStore)
	})

	t.Run("Trace", func(t *testing.T) {
		var out bytes.Buffer
		logger := CurrentLogger()
		level := logger.VerboseLevel()
		logger.SetOutput(&out).SetVerboseLevel(VerboseTrace)
		t.Cleanup(func() {
			logger.SetOutput(os.Stderr).SetVerboseLevel(level)
		})

		_, err := NewWikilinkResolver(newWikilinkStore(t)).ConvertWikilinks(ctx, "[[a]] [[missing]]", "ja")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Resolved [[a]] (found: true)")
		assert.Contains(t, out.String(), "Resolved [[missing]] (found: false)")
		assert.Contains(t, out.String(), "Converting [[a]] to /ja/articles/a")
	})
}

func TestMissingWikilinks(t *testing.T) {
	resolver := NewWikilinkResolver(newWikilinkStore(t))
	missing, err := resolver.Missing(context.Background(), "[[a]]\n[[missing]]\n\n[[draft#intro]]", "ja")
	require.NoError(t, err)
	require.Len(t, missing, 2)
	assert.Equal(t, "missing", missing[0].Slug)
	assert.Equal(t, 2, missing[0].Line)
	assert.Equal(t, "draft", missing[1].Slug)
	assert.Equal(t, "intro", missing[1].Section)
	assert.Equal(t, 4, missing[1].Line)
}
