package plugins

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
)

// URLCardPlugin converts paragraphs made only of bare links into one card per link.
// A paragraph with any other content is left untouched.
func URLCardPlugin(doc ast.Node) {
	rewrite(doc, rewriteParagraphs(func(paragraph *ast.Paragraph) ([]ast.Node, bool) {
		links, ok := paragraphLinks(paragraph)
		if !ok {
			return nil, false
		}
		for _, link := range links {
			if !isCardLink(link) {
				return nil, false
			}
		}

		var cards []ast.Node
		for _, link := range links {
			card := &URLCard{URL: linkURL(link)}
			setChildren(card, []ast.Node{link})
			cards = append(cards, card)
		}
		return cards, true
	}))
}

// isCardLink returns if the link is an autolinked URL (text equals href) not pointing to an image.
func isCardLink(link *ast.Link) bool {
	url := linkURL(link)
	return plainText(link) == url &&
		linkpattern.IsBareURL(url) &&
		!linkpattern.IsImageURL(url)
}
