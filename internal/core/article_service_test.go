package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every lookup by slug.
type failingStore struct {
	ArticleStore
}

func (s *failingStore) SelectArticleBySlug(ctx context.Context, slug, lang string) (*Article, error) {
	return nil, errors.New("disk I/O error")
}

func TestArticleService(t *testing.T) {
	ctx := context.Background()

	store, err := NewMemoryStore(
		NewPublishedArticle("go-tips", "ja", "Go のコツ", "# Go のコツ\n\n[[testing]] と [[missing]] を参照。\n\n## エラー処理\n"),
		NewPublishedArticle("testing", "ja", "テスト", "# テスト"),
		&Article{Slug: "draft", Status: StatusDraft, Language: "ja", Title: "Draft", Content: "# Draft"},
	)
	require.NoError(t, err)
	service := NewArticleService(store)

	t.Run("Published article", func(t *testing.T) {
		article, err := service.GetArticle(ctx, "go-tips", "ja")
		require.NoError(t, err)
		assert.Equal(t, "Go のコツ", article.Title)
		assert.Equal(t, "# Go のコツ\n\n[テスト](/ja/articles/testing) と [[missing]] を参照。\n\n## エラー処理\n", article.Content)
		assert.Contains(t, article.HTML, `<a href="/ja/articles/testing">テスト</a>`)
		require.Len(t, article.Headings, 2)
		assert.Equal(t, "エラー処理", article.Headings[1].Text)
	})

	t.Run("Not found", func(t *testing.T) {
		for _, slug := range []string{"draft", "missing"} {
			_, err := service.GetArticle(ctx, slug, "ja")
			assert.ErrorIs(t, err, ErrNotFound, slug)
		}
		_, err := service.GetArticle(ctx, "go-tips", "en")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Store failure", func(t *testing.T) {
		_, err := NewArticleService(&failingStore{ArticleStore: store}).GetArticle(ctx, "go-tips", "ja")
		assert.ErrorIs(t, err, ErrStore)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("Render", func(t *testing.T) {
		html, err := service.Render(ctx, "> [!WARNING] Careful\n> Read [[testing]].", "ja")
		require.NoError(t, err)
		assert.Contains(t, html, `data-embed="alert"`)
		assert.Contains(t, html, `data-variant="warning"`)
		assert.Contains(t, html, `<a href="/ja/articles/testing">テスト</a>`)
	})
}
