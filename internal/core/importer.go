package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/filesystem"
	"golang.org/x/exp/slices"
)

// Extensions of the files to import
var markdownExtensions = []string{".md", ".markdown"}

// ArticleFrontMatter lists the supported front matter attributes.
type ArticleFrontMatter struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Status      string    `yaml:"status"`
	Language    string    `yaml:"language"`
	PublishedAt time.Time `yaml:"published_at"`
}

// Keys of ArticleFrontMatter
var frontMatterKeys = []string{"slug", "title", "status", "language", "published_at"}

// unknownAttributes lists front matter keys that are not imported, sorted.
func unknownAttributes(frontMatter markdown.FrontMatter) []string {
	attributes, err := frontMatter.AsMap()
	if err != nil {
		return nil
	}
	var result []string
	for key := range attributes {
		if !slices.Contains(frontMatterKeys, key) {
			result = append(result, key)
		}
	}
	slices.Sort(result)
	return result
}

// Importer loads Markdown files into the store.
type Importer struct {
	store  ArticleStore
	config ConfigFile
	ignore IgnoreFile

	// Optional callback invoked after each imported file
	progress func(done, total int, path string)
}

func NewImporter(store ArticleStore, config *Config) *Importer {
	importer := &Importer{
		store: store,
	}
	if config != nil {
		importer.config = config.ConfigFile
		importer.ignore = config.IgnoreFile
	} else {
		importer.config.applyDefaults()
	}
	return importer
}

// OnProgress registers a callback reporting the files imported by ImportDir.
func (i *Importer) OnProgress(fn func(done, total int, path string)) {
	i.progress = fn
}

// ImportDir imports all Markdown files present under the directory except ignored ones.
func (i *Importer) ImportDir(ctx context.Context, dir string) ([]*Article, error) {
	paths, err := filesystem.ListFiles(dir, markdownExtensions...)
	if err != nil {
		return nil, err
	}

	var relativePaths []string
	for _, path := range paths {
		relativePath, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		if i.ignore.MustExcludeFile(relativePath, false) {
			CurrentLogger().Debugf("Ignoring %s", relativePath)
			continue
		}
		relativePaths = append(relativePaths, relativePath)
	}

	var articles []*Article
	for _, relativePath := range relativePaths {
		if err := ctx.Err(); err != nil {
			return articles, err
		}
		article, err := i.ImportFile(ctx, filepath.Join(dir, relativePath))
		if err != nil {
			return articles, fmt.Errorf("unable to import %s: %w", relativePath, err)
		}
		articles = append(articles, article)
		if i.progress != nil {
			i.progress(len(articles), len(relativePaths), relativePath)
		}
	}
	return articles, nil
}

// ImportFile parses a single file and saves it.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Article, error) {
	file, err := markdown.ParseFile(path)
	if err != nil {
		return nil, err
	}
	article, err := i.newArticle(file)
	if err != nil {
		return nil, err
	}
	if err := i.store.SaveArticle(ctx, article); err != nil {
		return nil, err
	}
	CurrentLogger().Infof("Imported %s from %s", article, filepath.Base(path))
	return article, nil
}

func (i *Importer) newArticle(file *markdown.File) (*Article, error) {
	var attributes ArticleFrontMatter
	if err := file.FrontMatter.Decode(&attributes); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	for _, key := range unknownAttributes(file.FrontMatter) {
		CurrentLogger().Warnf("Ignoring unknown front matter attribute %q in %s", key, filepath.Base(file.AbsolutePath))
	}

	status, err := ParseArticleStatus(attributes.Status)
	if err != nil {
		return nil, err
	}

	lang := attributes.Language
	if lang == "" {
		lang = i.config.Core.Language
	}
	if !i.config.SupportLanguage(lang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	transformers := []markdown.Transformer{
		markdown.StripHTMLComments(),
		markdown.StripMarkdownUnofficialComments(),
	}
	title := attributes.Title
	if title == "" {
		if topHeading, ok := file.Body.Title(); ok {
			// The title is stored separately
			title = topHeading
			transformers = append(transformers, markdown.StripTopHeading())
		} else {
			title = strings.TrimSuffix(filepath.Base(file.AbsolutePath), filepath.Ext(file.AbsolutePath))
		}
	}
	transformers = append(transformers, markdown.SquashBlankLines())
	content, err := file.Body.Transform(transformers...)
	if err != nil {
		return nil, err
	}

	articleSlug := attributes.Slug
	if articleSlug == "" {
		articleSlug = slug.Make(title)
	}
	if !slug.IsSlug(articleSlug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, articleSlug)
	}

	return &Article{
		Slug:        articleSlug,
		Status:      status,
		PublishedAt: attributes.PublishedAt,
		Language:    lang,
		Title:       title,
		Content:     content.TrimSpace(),
	}, nil
}
