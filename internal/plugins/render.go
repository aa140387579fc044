package plugins

import (
	stdhtml "html"
	"io"
	"strconv"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
)

// RenderHTML renders a transformed tree.
// Embed nodes are rendered as <div data-embed="..."> elements whose data-* attributes
// are hydrated by the frontend.
func RenderHTML(doc ast.Node) []byte {
	opts := html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: renderEmbed,
	}
	return markdown.Render(doc, html.NewRenderer(opts))
}

type attribute struct {
	name  string
	value string
}

func renderEmbed(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *Callout:
		if !entering {
			io.WriteString(w, "</div>\n")
			return ast.GoToNext, true
		}
		writeEmbed(w, "alert", false,
			attribute{"variant", n.Variant},
			attribute{"title", n.Title})
	case *URLCard:
		if !entering {
			io.WriteString(w, "</div>\n")
			return ast.GoToNext, true
		}
		writeEmbed(w, "url-card", false, attribute{"url", n.URL})
	case *ProductCard:
		writeEmbed(w, "product-card", true,
			attribute{"amazon-url", n.AmazonURL},
			attribute{"amazon-asin", n.AmazonASIN},
			attribute{"amazon-domain", n.AmazonDomain},
			attribute{"rakuten-url", n.RakutenURL},
			attribute{"rakuten-domain", n.RakutenDomain})
	case *YouTube:
		start := ""
		if n.HasStart {
			start = strconv.Itoa(n.Start)
		}
		writeEmbed(w, "youtube", true,
			attribute{"video-id", n.VideoID},
			attribute{"start", start})
	case *AmazonCard:
		writeEmbed(w, "amazon", true,
			attribute{"url", n.URL},
			attribute{"asin", n.ASIN},
			attribute{"domain", n.Domain})
	case *RakutenCard:
		writeEmbed(w, "rakuten", true,
			attribute{"url", n.URL},
			attribute{"domain", n.Domain})
	case *ArticleCard:
		writeEmbed(w, "article", true,
			attribute{"lang", n.Language},
			attribute{"slug", n.Slug},
			attribute{"heading-id", n.HeadingID},
			attribute{"title", n.Title},
			attribute{"url", n.URL})
	default:
		return ast.GoToNext, false
	}
	return ast.GoToNext, true
}

// writeEmbed writes the opening tag (and the closing one for leaf embeds).
// Empty attributes are omitted.
func writeEmbed(w io.Writer, name string, closed bool, attributes ...attribute) {
	io.WriteString(w, `<div data-embed="`+name+`"`)
	for _, attr := range attributes {
		if attr.value == "" {
			continue
		}
		io.WriteString(w, ` data-`+attr.name+`="`+stdhtml.EscapeString(attr.value)+`"`)
	}
	if closed {
		io.WriteString(w, "></div>\n")
		return
	}
	io.WriteString(w, ">\n")
}
