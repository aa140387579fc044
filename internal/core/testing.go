package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/internal/testutil"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/clock"
	"github.com/stretchr/testify/require"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	if storeSingleton != nil {
		storeSingleton.Close()
		storeSingleton = nil
	}
	configOnce.Reset()
	storeOnce.Reset()
	loggerOnce.Reset()
}

/* Fixtures */

// SetUpBlogFromFileContent populates a temp blog directory containing a single file.
func SetUpBlogFromFileContent(t *testing.T, name, content string) string {
	filename := testutil.SetUpFromFileContent(t, name, content)
	configureDir(t, filepath.Dir(filename))
	return filename
}

// SetUpBlogFromGoldenDirNamed populates a temp blog directory based on the given golden dir name.
func SetUpBlogFromGoldenDirNamed(t *testing.T, testname string) string {
	dirname := testutil.SetUpFromGoldenDirNamed(t, testname)
	configureDir(t, dirname)
	return dirname
}

// SetUpBlogFromTempDir populates an empty temp blog directory.
func SetUpBlogFromTempDir(t *testing.T) string {
	dirname := t.TempDir()
	configureDir(t, dirname)
	return dirname
}

func configureDir(t *testing.T, dirname string) {
	blogDir := filepath.Join(dirname, ".blog")
	if _, err := os.Stat(blogDir); os.IsNotExist(err) {
		// Create a default configuration if not exists for CurrentConfig() to work
		if err := os.Mkdir(blogDir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(blogDir, "config"), []byte(`
[core]
language = "ja"
languages = ["ja", "en"]
`), os.ModePerm); err != nil {
			t.Fatal(err)
		}
	}
	// Force the application to consider the temporary directory as the home
	t.Setenv("BLOG_HOME", dirname)
	t.Cleanup(Reset)

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", blogDir)
}

// NewTestSQLiteStore opens a store in a temporary directory.
func NewTestSQLiteStore(t *testing.T) *SQLiteStore {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "database.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustSaveArticles saves the articles or fails the test.
func MustSaveArticles(t *testing.T, store ArticleStore, articles ...*Article) {
	for _, article := range articles {
		require.NoError(t, store.SaveArticle(context.Background(), article))
	}
}

// NewPublishedArticle is a shorthand for fixtures.
func NewPublishedArticle(slug, lang, title, content string) *Article {
	return &Article{
		Slug:     slug,
		Status:   StatusPublished,
		Language: lang,
		Title:    title,
		Content:  markdown.Document(content),
	}
}

/* Reproducible Tests */

// FreezeNow wraps the clock API to register the cleanup function at the end of the test.
func FreezeNow(t *testing.T) time.Time {
	now := clock.Freeze().Now()
	t.Cleanup(clock.Unfreeze)
	return now
}

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) *clock.FrozenClock {
	frozen := clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return frozen
}
