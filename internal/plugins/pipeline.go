package plugins

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Extensions used to parse articles.
// HardLineBreak turns every newline inside a paragraph into an *ast.Hardbreak.
const Extensions = parser.CommonExtensions | parser.Autolink | parser.HardLineBreak

// Plugin transforms a Markdown tree in place.
type Plugin func(doc ast.Node)

// Default returns the plugins in the order they must run.
// Product cards must be detected before the single-link plugins consume their links.
func Default() []Plugin {
	return []Plugin{
		ProductCardPlugin,
		YouTubePlugin,
		AmazonPlugin,
		RakutenPlugin,
		WikiLinkPlugin,
		URLCardPlugin,
		Alert,
		HeadingAnchorPlugin,
	}
}

// Parse parses a Markdown document.
func Parse(md []byte) ast.Node {
	p := parser.NewWithExtensions(Extensions)
	return markdown.Parse(md, p)
}

// Apply runs the plugins successively on the tree.
func Apply(doc ast.Node, plugins ...Plugin) ast.Node {
	for _, plugin := range plugins {
		plugin(doc)
	}
	return doc
}

// Process parses a Markdown document and applies the default plugins.
func Process(md []byte) ast.Node {
	return Apply(Parse(md), Default()...)
}
