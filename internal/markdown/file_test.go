package markdown_test

import (
	"testing"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/internal/testutil"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/clock"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	clock.FreezeAt(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	defer clock.Unfreeze()
	filesystem.OverrideFileInfoReader(filesystem.NewClockBasedFileInfoReader())
	defer filesystem.RestoreFileInfoReader()

	path := testutil.SetUpFromFileContent(t, "go-tips.md", `---
slug: go-tips
title: Go Tips
tags: [go, tips]
---

# Go Tips

Some text.

---

After a horizontal rule.
`)

	file, err := markdown.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.AbsolutePath)
	assert.Equal(t, clock.Now(), file.ModTime)
	assert.Equal(t, 7, file.BodyLine)
	assert.Equal(t, markdown.Document("# Go Tips\n\nSome text.\n\n---\n\nAfter a horizontal rule.\n"), file.Body)

	attributes, err := file.FrontMatter.AsMap()
	require.NoError(t, err)
	assert.Equal(t, "go-tips", attributes["slug"])
	assert.Equal(t, []any{"go", "tips"}, attributes["tags"])

	var fm struct {
		Slug  string `yaml:"slug"`
		Title string `yaml:"title"`
	}
	require.NoError(t, file.FrontMatter.Decode(&fm))
	assert.Equal(t, "Go Tips", fm.Title)
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name        string
		content     string               // input
		frontMatter markdown.FrontMatter // output
		body        markdown.Document    // output
		bodyLine    int                  // output
	}{
		{
			name:     "No front matter",
			content:  "\n\n# Title\ntext\n",
			body:     "# Title\ntext\n",
			bodyLine: 3,
		},
		{
			name:        "Empty body",
			content:     "---\nslug: a\n---\n",
			frontMatter: "slug: a\n",
			body:        "",
			bodyLine:    0,
		},
		{
			name:     "Rule inside body",
			content:  "text\n---\nmore",
			body:     "text\n---\nmore\n",
			bodyLine: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := markdown.ParseContent([]byte(tt.content))
			assert.Equal(t, tt.frontMatter, file.FrontMatter)
			assert.Equal(t, tt.body, file.Body)
			assert.Equal(t, tt.bodyLine, file.BodyLine)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := markdown.ParseFile("testdata/missing.md")
	assert.Error(t, err)
}
