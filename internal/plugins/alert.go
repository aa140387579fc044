package plugins

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown/ast"
)

var regexAlertMarker = regexp.MustCompile(`^\[!(NOTE|INFO|SUCCESS|WARNING|DANGER)\]`)

var alertVariants = map[string]string{
	"NOTE":    VariantDefault,
	"INFO":    VariantInfo,
	"SUCCESS": VariantSuccess,
	"WARNING": VariantWarning,
	"DANGER":  VariantDestructive,
}

// Alert converts blockquotes starting with [!TYPE] into callouts.
//
//	> [!WARNING] Title
//	> Body
func Alert(doc ast.Node) {
	rewrite(doc, func(parent ast.Node, children []ast.Node) ([]ast.Node, bool) {
		var result []ast.Node
		changed := false
		for _, child := range children {
			if quote, ok := child.(*ast.BlockQuote); ok {
				if callout, ok := newCallout(quote); ok {
					result = append(result, callout)
					changed = true
					continue
				}
			}
			result = append(result, child)
		}
		return result, changed
	})
}

func newCallout(quote *ast.BlockQuote) (*Callout, bool) {
	blocks := quote.GetChildren()
	if len(blocks) == 0 {
		return nil, false
	}
	first, ok := blocks[0].(*ast.Paragraph)
	if !ok {
		return nil, false
	}
	inlines := first.GetChildren()

	// Skip a leading line-break artifact
	i := 0
	for i < len(inlines) && (isBlankText(inlines[i]) || isBreak(inlines[i])) {
		i++
	}
	if i == len(inlines) {
		return nil, false
	}
	// The parser may split the marker line into several text nodes
	var leading strings.Builder
	next := i
	for next < len(inlines) {
		t, ok := inlines[next].(*ast.Text)
		if !ok {
			break
		}
		leading.Write(t.Literal)
		next++
	}
	literal := strings.TrimLeft(leading.String(), " \t")
	match := regexAlertMarker.FindStringSubmatch(literal)
	if match == nil {
		return nil, false
	}

	callout := &Callout{Variant: alertVariants[match[1]]}

	// The title is the rest of the marker line
	var body []ast.Node
	var title strings.Builder
	rest := literal[len(match[0]):]
	if line, remaining, found := strings.Cut(rest, "\n"); found {
		// The line break is embedded in the text
		title.WriteString(line)
		if strings.TrimSpace(remaining) != "" {
			body = append(body, &ast.Text{Leaf: ast.Leaf{Literal: []byte(remaining)}})
		}
		body = append(body, inlines[next:]...)
	} else {
		title.WriteString(rest)
		j := next
		for j < len(inlines) && !isBreak(inlines[j]) {
			title.WriteString(plainText(inlines[j]))
			j++
		}
		// Drop exactly one break following the title line
		if j < len(inlines) {
			j++
		}
		body = append(body, inlines[j:]...)
	}
	callout.Title = strings.TrimSpace(title.String())

	var children []ast.Node
	if !inlinesBlank(body) {
		paragraph := &ast.Paragraph{}
		setChildren(paragraph, body)
		children = append(children, paragraph)
	}
	children = append(children, blocks[1:]...)
	setChildren(callout, children)

	return callout, true
}

func inlinesBlank(nodes []ast.Node) bool {
	for _, node := range nodes {
		if !isBlankText(node) && !isBreak(node) {
			return false
		}
	}
	return true
}
