package core

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/saneatsu/saneatsu.me-sub001/internal/testutil"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobPaths(t *testing.T) {
	var g GlobPaths = []GlobPath{
		"drafts/",
		"!drafts/ready.md",

		"series/**/*.tmp",
		"series/*/*.png",

		"/todos/",
		"/todos.md",
	}

	assert.True(t, g.Match("drafts/toto/"))
	assert.False(t, g.Match("drafts.md"))       // No rule
	assert.False(t, g.Match("drafts/ready.md")) // Using negation

	assert.False(t, g.Match("myseries/test.tmp"))       // No rule
	assert.True(t, g.Match("series/test.tmp"))          // ** matches 0-n directories
	assert.True(t, g.Match("series/sub/test.tmp"))      // ** matches 0-n directories
	assert.True(t, g.Match("series/sub/sub/test.tmp"))  // ** matches 0-n directories
	assert.False(t, g.Match("series/test.png"))         // matches 1 directory
	assert.True(t, g.Match("series/sub/test.png"))      // matches 1 directory
	assert.False(t, g.Match("series/sub/sub/test.png")) // matches 1 directory

	assert.False(t, g.Match("sub/todos/index.md")) // not root directory
	assert.False(t, g.Match("sub/todos.md"))       // not root directory
	assert.True(t, g.Match("todos.md"))            // root
	assert.True(t, g.Match("todos/index.md"))      // root

	ignoreFile := IgnoreFile{Entries: g}
	assert.True(t, ignoreFile.MustExcludeFile("drafts/toto", true))
	assert.False(t, ignoreFile.MustExcludeFile("articles/go.md", false))
}

func TestReadConfigFromDirectory(t *testing.T) {

	t.Run("Config present", func(t *testing.T) {
		dir := testutil.SetUpFromFiles(t, map[string]string{
			".blog/config": `
[core]
language = "en"
languages = ["en", "fr"]

[suggestions]
limit = 5

[server]
base_url = "https://example.com/"
`,
			".blogignore": `README.md`,

			"articles/2024/go-tips.md": `# Go tips`,
		})

		c, err := ReadConfigFromDirectory(filepath.Join(dir, "articles", "2024"))
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, dir, c.RootDirectory)
		assert.Equal(t, []GlobPath{"README.md"}, []GlobPath(c.IgnoreFile.Entries))

		assert.Equal(t, "en", c.ConfigFile.Core.Language)
		assert.True(t, c.ConfigFile.SupportLanguage("fr"))
		assert.False(t, c.ConfigFile.SupportLanguage("ja"))
		assert.Equal(t, 5, c.ConfigFile.Suggestions.Limit)
		// Default values
		assert.Equal(t, MaxSuggestionLimit, c.ConfigFile.Suggestions.MaxLimit)
		assert.Equal(t, SuggestionScanLimit, c.ConfigFile.Suggestions.ScanLimit)
		assert.Equal(t, filepath.Join(dir, ".blog", "database.db"), c.DatabasePath())
		assert.Equal(t, "https://example.com/en/articles/go-tips", c.ConfigFile.ArticleURL("/en/articles/go-tips"))
	})

	t.Run("Config missing", func(t *testing.T) {
		dir := testutil.SetUpFromFiles(t, map[string]string{
			// missing .blog directory
			".blogignore":         `README.md`,
			"articles/go-tips.md": `# Go tips`,
		})

		c, err := ReadConfigFromDirectory(filepath.Join(dir, "articles"))
		require.NoError(t, err)
		require.Nil(t, c)
	})

	t.Run("Unknown field", func(t *testing.T) {
		dir := testutil.SetUpFromFiles(t, map[string]string{
			".blog/config": `
[core]
extensions = ["md"]
`,
		})

		_, err := ReadConfigFromDirectory(dir)
		require.Error(t, err)
	})

	t.Run("Default files", func(t *testing.T) {
		dir := testutil.SetUpFromFiles(t, map[string]string{
			".blog/config": `
[core]
language = "ja"`,
			// No file .blogignore defined
		})

		c, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		require.NotNil(t, c)

		// Check all default entries are present
		iEntry := 0
		for _, line := range strings.Split(DefaultIgnore, "\n") {
			if text.IsBlank(line) || strings.HasPrefix(line, "#") {
				continue
			}
			assert.Equal(t, line, string(c.IgnoreFile.Entries[iEntry]))
			iEntry++
		}
		assert.Equal(t, []string{"ja"}, c.ConfigFile.Core.Languages)
	})
}

func TestResolveLanguage(t *testing.T) {
	config, err := parseConfigFile(DefaultConfig)
	require.NoError(t, err)
	c := &Config{ConfigFile: *config}

	lang, err := c.ResolveLanguage("")
	require.NoError(t, err)
	assert.Equal(t, "ja", lang)

	lang, err = c.ResolveLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	_, err = c.ResolveLanguage("xx")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	assert.True(t, IsClientError(err))
}

func TestInitConfigFromDirectory(t *testing.T) {
	dir := t.TempDir()

	c, err := InitConfigFromDirectory(dir)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.FileExists(t, filepath.Join(dir, ".blog", "config"))
	assert.FileExists(t, filepath.Join(dir, ".blog", ".gitignore"))
	assert.FileExists(t, filepath.Join(dir, ".blogignore"))
	assert.Equal(t, "ja", c.ConfigFile.Core.Language)

	// Must not override an existing configuration
	_, err = InitConfigFromDirectory(dir)
	assert.Error(t, err)
}

func TestCurrentConfig(t *testing.T) {
	dir := SetUpBlogFromTempDir(t)

	c := CurrentConfig()
	assert.Equal(t, dir, c.RootDirectory)
	assert.Equal(t, []string{"ja", "en"}, c.ConfigFile.Core.Languages)
}
