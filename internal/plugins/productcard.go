package plugins

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
)

// ProductCardPlugin merges an Amazon link and a Rakuten link into a single product card.
// Both links must be alone in the same paragraph (only separated by spaces or line breaks)
// or alone in two consecutive paragraphs. Must run before the single-link plugins.
func ProductCardPlugin(doc ast.Node) {
	rewrite(doc, func(parent ast.Node, children []ast.Node) ([]ast.Node, bool) {
		var result []ast.Node
		changed := false
		for i := 0; i < len(children); i++ {
			paragraph, ok := children[i].(*ast.Paragraph)
			if !ok {
				result = append(result, children[i])
				continue
			}

			// Same paragraph
			if links, ok := paragraphLinks(paragraph); ok && len(links) == 2 {
				if card, ok := newProductCard(links[0], links[1]); ok {
					result = append(result, card)
					changed = true
					continue
				}
			}

			// Consecutive paragraphs
			if i+1 < len(children) {
				next, ok := children[i+1].(*ast.Paragraph)
				if ok {
					first, ok1 := singleLink(paragraph)
					second, ok2 := singleLink(next)
					if ok1 && ok2 {
						if card, ok := newProductCard(first, second); ok {
							result = append(result, card)
							changed = true
							i++ // Consume the next paragraph
							continue
						}
					}
				}
			}

			result = append(result, paragraph)
		}
		return result, changed
	})
}

// newProductCard accepts exactly one Amazon link and one Rakuten link, in any order.
func newProductCard(a, b *ast.Link) (*ProductCard, bool) {
	amazon, rakuten := a, b
	if linkpattern.IsRakutenURL(linkURL(a)) && linkpattern.IsAmazonURL(linkURL(b)) {
		amazon, rakuten = b, a
	}
	if !linkpattern.IsAmazonURL(linkURL(amazon)) || !linkpattern.IsRakutenURL(linkURL(rakuten)) {
		return nil, false
	}

	card := &ProductCard{
		AmazonURL:     linkURL(amazon),
		RakutenURL:    linkURL(rakuten),
		RakutenDomain: linkpattern.ExtractRakutenDomain(linkURL(rakuten)),
	}
	if asin, ok := linkpattern.ExtractAmazonASIN(card.AmazonURL); ok {
		card.AmazonASIN = asin
	}
	if domain, ok := linkpattern.ExtractAmazonDomain(card.AmazonURL); ok {
		card.AmazonDomain = domain
	}
	return card, true
}
