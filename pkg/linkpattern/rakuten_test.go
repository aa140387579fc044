package linkpattern_test

import (
	"testing"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
	"github.com/stretchr/testify/assert"
)

func TestIsRakutenURL(t *testing.T) {
	tests := []struct {
		url      string // input
		expected bool   // output
	}{
		{"https://a.r10.to/hxyz", true},
		{"https://hb.afl.rakuten.co.jp/ichiba/123/?pc=x", true},
		{"https://item.rakuten.co.jp/shop/item/", true},
		{"https://books.rakuten.co.jp/rb/123/", true},
		{"https://product.rakuten.co.jp/product/-/abc/", true},
		{"https://www.item.rakuten.co.jp/shop/", true},
		{"https://travel.rakuten.co.jp/", false},
		{"https://rakuten.co.jp/", false},
		{"https://item.rakuten.co.jp.example.com/", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, linkpattern.IsRakutenURL(tt.url))
		})
	}
}

func TestExtractRakutenDomain(t *testing.T) {
	tests := []struct {
		url      string // input
		expected string // output
	}{
		{"https://a.r10.to/hxyz", "a.r10.to"},
		{"https://www.item.rakuten.co.jp/shop/", "item.rakuten.co.jp"},
		{"https://books.rakuten.co.jp:443/rb/", "books.rakuten.co.jp"},
		{"not a url", linkpattern.DefaultRakutenDomain},
		{"http://[::1", linkpattern.DefaultRakutenDomain},
		{"", linkpattern.DefaultRakutenDomain},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, linkpattern.ExtractRakutenDomain(tt.url))
		})
	}
	assert.Equal(t, "rakuten.co.jp", linkpattern.ExtractRakutenDomain("not a url"))
}
