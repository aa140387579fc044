package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
	"golang.org/x/exp/slices"
)

// WikiLinkInfo describes the target of a wikilink.
// Title is nil when the article is missing or not published and the wikilink must stay unconverted.
type WikiLinkInfo struct {
	Slug  string  `json:"slug"`
	Title *string `json:"title"`
	URL   string  `json:"url"`
}

// Resolved indicates if the wikilink can be rewritten.
func (w WikiLinkInfo) Resolved() bool {
	return w.Title != nil
}

// WikilinkResolver rewrites [[slug]] into Markdown links using the content store.
type WikilinkResolver struct {
	store ContentStore
}

func NewWikilinkResolver(store ContentStore) *WikilinkResolver {
	return &WikilinkResolver{
		store: store,
	}
}

// FetchArticleInfoBySlugs resolves all slugs using a single query.
// The result contains an entry for every requested slug.
func (r *WikilinkResolver) FetchArticleInfoBySlugs(ctx context.Context, slugs []string, lang string) (map[string]WikiLinkInfo, error) {
	result := make(map[string]WikiLinkInfo)
	if len(slugs) == 0 {
		return result, nil
	}

	states, err := r.store.SelectArticlesBySlugs(ctx, slugs, lang)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to resolve wikilinks: %w", ErrStore, err)
	}
	statesBySlug := make(map[string]ArticleState)
	for _, state := range states {
		statesBySlug[state.Slug] = state
	}

	for _, slug := range slugs {
		info := WikiLinkInfo{
			Slug: slug,
			URL:  linkpattern.ArticleURL(lang, slug),
		}
		if state, ok := statesBySlug[slug]; ok && state.Status == StatusPublished && state.Title != "" {
			title := state.Title
			info.Title = &title
		}
		CurrentLogger().Tracef("Resolved [[%s]] (found: %t)", slug, info.Resolved())
		result[slug] = info
	}
	return result, nil
}

// ConvertWikilinks replaces resolved wikilinks by Markdown links.
// Unresolved wikilinks are left unchanged.
func (r *WikilinkResolver) ConvertWikilinks(ctx context.Context, content, lang string) (string, error) {
	infos, err := r.resolve(ctx, content, lang)
	if err != nil || len(infos) == 0 {
		return content, err
	}

	result := markdown.ReplaceWikilinks(content, func(w markdown.Wikilink) (string, bool) {
		info, ok := infos[w.Slug]
		if !ok || !info.Resolved() {
			return "", false
		}
		url := info.URL
		if w.Anchored() {
			url += "#" + w.Section
		}
		CurrentLogger().Tracef("Converting %s to %s", w, url)
		return fmt.Sprintf("[%s](%s)", escapeLinkText(*info.Title), url), true
	})
	return result, nil
}

// escapeLinkText escapes the characters closing the text of a Markdown link.
func escapeLinkText(title string) string {
	return linkTextEscaper.Replace(title)
}

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// Missing returns the wikilinks that ConvertWikilinks would leave unchanged.
func (r *WikilinkResolver) Missing(ctx context.Context, content, lang string) ([]markdown.Wikilink, error) {
	infos, err := r.resolve(ctx, content, lang)
	if err != nil {
		return nil, err
	}

	var missing []markdown.Wikilink
	for _, wikilink := range markdown.Document(content).WikilinkReferences() {
		if info, ok := infos[wikilink.Slug]; ok && info.Resolved() {
			continue
		}
		missing = append(missing, wikilink)
	}
	return missing, nil
}

// resolve fetches the articles referenced by exact and anchored wikilinks.
func (r *WikilinkResolver) resolve(ctx context.Context, content, lang string) (map[string]WikiLinkInfo, error) {
	if !markdown.MatchWikilink(content) {
		return nil, nil
	}
	doc := markdown.Document(content)
	slugs := doc.WikilinkSlugs()
	for _, slug := range doc.AnchoredWikilinkSlugs() {
		if !slices.Contains(slugs, slug) {
			slugs = append(slugs, slug)
		}
	}
	if len(slugs) == 0 {
		return nil, nil
	}
	CurrentLogger().Debugf("Resolving %d wikilink(s) in %q", len(slugs), lang)
	return r.FetchArticleInfoBySlugs(ctx, slugs, lang)
}
