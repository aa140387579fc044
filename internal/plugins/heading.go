package plugins

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
)

// HeadingAnchorPlugin sets heading ids so that [[slug#heading-id]] links land on them.
// Explicit ids ("# Title {#custom}") are kept.
func HeadingAnchorPlugin(doc ast.Node) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !ok || !entering {
			return ast.GoToNext
		}
		if heading.HeadingID == "" {
			heading.HeadingID = markdown.HeadingID(plainText(heading))
		}
		return ast.SkipChildren
	})
}
