package plugins

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
)

// rewriteFunc returns the new children of parent, or false to keep them unchanged.
type rewriteFunc func(parent ast.Node, children []ast.Node) ([]ast.Node, bool)

// rewrite applies fn on every container of the tree, parents before their children.
// The children slice is rebuilt by fn and installed in one assignment.
func rewrite(node ast.Node, fn rewriteFunc) {
	if node.AsContainer() == nil {
		return
	}
	if children, changed := fn(node, node.GetChildren()); changed {
		setChildren(node, children)
	}
	for _, child := range node.GetChildren() {
		rewrite(child, fn)
	}
}

func setChildren(parent ast.Node, children []ast.Node) {
	for _, child := range children {
		child.SetParent(parent)
	}
	parent.SetChildren(children)
}

// rewriteParagraphs replaces each paragraph for which fn returns replacement nodes.
func rewriteParagraphs(fn func(paragraph *ast.Paragraph) ([]ast.Node, bool)) rewriteFunc {
	return func(parent ast.Node, children []ast.Node) ([]ast.Node, bool) {
		var result []ast.Node
		changed := false
		for _, child := range children {
			paragraph, ok := child.(*ast.Paragraph)
			if !ok {
				result = append(result, child)
				continue
			}
			replacements, ok := fn(paragraph)
			if !ok {
				result = append(result, child)
				continue
			}
			result = append(result, replacements...)
			changed = true
		}
		return result, changed
	}
}

// isBlankText returns if the node is a text node containing only whitespace (or nothing).
func isBlankText(node ast.Node) bool {
	t, ok := node.(*ast.Text)
	return ok && text.IsBlank(string(t.Literal))
}

// isBreak returns if the node represents a line break.
func isBreak(node ast.Node) bool {
	switch node.(type) {
	case *ast.Hardbreak, *ast.Softbreak:
		return true
	}
	return false
}

// paragraphLinks returns the links of a paragraph containing only links,
// blank texts and line breaks.
func paragraphLinks(paragraph *ast.Paragraph) ([]*ast.Link, bool) {
	var links []*ast.Link
	for _, child := range paragraph.GetChildren() {
		if link, ok := child.(*ast.Link); ok {
			links = append(links, link)
			continue
		}
		if isBlankText(child) || isBreak(child) {
			continue
		}
		return nil, false
	}
	return links, len(links) > 0
}

// singleLink returns the link of a paragraph containing nothing else (blank texts excepted).
func singleLink(paragraph *ast.Paragraph) (*ast.Link, bool) {
	var found *ast.Link
	for _, child := range paragraph.GetChildren() {
		if link, ok := child.(*ast.Link); ok && found == nil {
			found = link
			continue
		}
		if isBlankText(child) {
			continue
		}
		return nil, false
	}
	return found, found != nil
}

func linkURL(link *ast.Link) string {
	return string(link.Destination)
}

// plainText concatenates the literal text of a node and its descendants.
func plainText(node ast.Node) string {
	var sb strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Text:
			sb.Write(leaf.Literal)
		case *ast.Code:
			sb.Write(leaf.Literal)
		case *ast.Hardbreak, *ast.Softbreak:
			sb.WriteString("\n")
		}
		return ast.GoToNext
	})
	return sb.String()
}
