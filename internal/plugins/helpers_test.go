package plugins_test

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
)

/* Test Helpers */

func txt(s string) *ast.Text {
	return &ast.Text{Leaf: ast.Leaf{Literal: []byte(s)}}
}

func br() *ast.Hardbreak {
	return &ast.Hardbreak{}
}

func link(url, label string) *ast.Link {
	l := &ast.Link{Destination: []byte(url)}
	ast.AppendChild(l, txt(label))
	return l
}

// autolink simulates a bare URL (text equals href).
func autolink(url string) *ast.Link {
	return link(url, url)
}

func emph(children ...ast.Node) *ast.Emph {
	return appendChildren(&ast.Emph{}, children).(*ast.Emph)
}

func paragraph(children ...ast.Node) *ast.Paragraph {
	return appendChildren(&ast.Paragraph{}, children).(*ast.Paragraph)
}

func quote(children ...ast.Node) *ast.BlockQuote {
	return appendChildren(&ast.BlockQuote{}, children).(*ast.BlockQuote)
}

func document(children ...ast.Node) *ast.Document {
	return appendChildren(&ast.Document{}, children).(*ast.Document)
}

func appendChildren(parent ast.Node, children []ast.Node) ast.Node {
	for _, child := range children {
		ast.AppendChild(parent, child)
	}
	return parent
}

// textOf concatenates the text nodes under a node.
func textOf(node ast.Node) string {
	var sb strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if t, ok := n.(*ast.Text); ok && entering {
			sb.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return sb.String()
}

// nonBlankChildren ignores the empty text nodes the parser may leave behind.
func nonBlankChildren(node ast.Node) []ast.Node {
	var result []ast.Node
	for _, child := range node.GetChildren() {
		if t, ok := child.(*ast.Text); ok && strings.TrimSpace(string(t.Literal)) == "" {
			continue
		}
		result = append(result, child)
	}
	return result
}
