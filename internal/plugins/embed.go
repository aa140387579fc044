package plugins

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
)

// singleLinkPlugin replaces paragraphs containing only one link when convert accepts it.
func singleLinkPlugin(convert func(link *ast.Link) (ast.Node, bool)) Plugin {
	return func(doc ast.Node) {
		rewrite(doc, rewriteParagraphs(func(paragraph *ast.Paragraph) ([]ast.Node, bool) {
			link, ok := singleLink(paragraph)
			if !ok {
				return nil, false
			}
			node, ok := convert(link)
			if !ok {
				return nil, false
			}
			return []ast.Node{node}, true
		}))
	}
}

// YouTubePlugin embeds videos linked alone in a paragraph.
var YouTubePlugin = singleLinkPlugin(func(link *ast.Link) (ast.Node, bool) {
	videoID, ok := linkpattern.ExtractYouTubeVideoID(linkURL(link))
	if !ok {
		return nil, false
	}
	embed := &YouTube{VideoID: videoID}
	embed.Start, embed.HasStart = linkpattern.ExtractYouTubeTimestamp(linkURL(link))
	return embed, true
})

// AmazonPlugin converts Amazon links alone in a paragraph.
var AmazonPlugin = singleLinkPlugin(func(link *ast.Link) (ast.Node, bool) {
	url := linkURL(link)
	if !linkpattern.IsAmazonURL(url) {
		return nil, false
	}
	card := &AmazonCard{URL: url}
	card.ASIN, _ = linkpattern.ExtractAmazonASIN(url)
	card.Domain, _ = linkpattern.ExtractAmazonDomain(url)
	return card, true
})

// RakutenPlugin converts Rakuten links alone in a paragraph.
var RakutenPlugin = singleLinkPlugin(func(link *ast.Link) (ast.Node, bool) {
	url := linkURL(link)
	if !linkpattern.IsRakutenURL(url) {
		return nil, false
	}
	return &RakutenCard{
		URL:    url,
		Domain: linkpattern.ExtractRakutenDomain(url),
	}, true
})

// WikiLinkPlugin converts links to articles (as produced by the wikilink conversion)
// alone in a paragraph.
var WikiLinkPlugin = singleLinkPlugin(func(link *ast.Link) (ast.Node, bool) {
	url := linkURL(link)
	path, ok := linkpattern.ParseArticlePath(url)
	if !ok {
		return nil, false
	}
	return &ArticleCard{
		Language:  path.Language,
		Slug:      path.Slug,
		HeadingID: path.HeadingID,
		Title:     plainText(link),
		URL:       url,
	}, true
})
