package plugins

import (
	"github.com/gomarkdown/markdown/ast"
)

// Alert variants
const (
	VariantDefault     = "default"
	VariantInfo        = "info"
	VariantSuccess     = "success"
	VariantWarning     = "warning"
	VariantDestructive = "destructive"
)

// Callout replaces a blockquote starting with [!TYPE].
// Its children are the body blocks.
type Callout struct {
	ast.Container

	Variant string
	Title   string // Optional
}

// ProductCard merges an Amazon link and a Rakuten link for the same product.
// Empty fields mean the information could not be extracted.
type ProductCard struct {
	ast.Leaf

	AmazonURL     string
	AmazonASIN    string
	AmazonDomain  string
	RakutenURL    string
	RakutenDomain string
}

// URLCard wraps a bare link to display a preview.
// Its single child is the original link.
type URLCard struct {
	ast.Container

	URL string
}

// YouTube embeds a video player.
type YouTube struct {
	ast.Leaf

	VideoID  string
	Start    int // seconds
	HasStart bool
}

// AmazonCard is a single Amazon product link.
type AmazonCard struct {
	ast.Leaf

	URL    string
	ASIN   string
	Domain string
}

// RakutenCard is a single Rakuten product link.
type RakutenCard struct {
	ast.Leaf

	URL    string
	Domain string
}

// ArticleCard links to another article of the blog.
type ArticleCard struct {
	ast.Leaf

	Language  string
	Slug      string
	HeadingID string
	Title     string
	URL       string
}
