package linkpattern

import (
	neturl "net/url"
	"regexp"
	"strings"
)

// DefaultRakutenDomain is returned when the domain cannot be determined.
const DefaultRakutenDomain = "rakuten.co.jp"

var regexRakutenHost = regexp.MustCompile(
	`^https?://(?:www\.)?(?:a\.r10\.to|hb\.afl\.rakuten\.co\.jp|(?:item|books|product)\.rakuten\.co\.jp)(?:[/?#:]|$)`,
)

// IsRakutenURL reports whether the URL points to Rakuten (affiliate links included).
func IsRakutenURL(url string) bool {
	return regexRakutenHost.MatchString(url)
}

// ExtractRakutenDomain returns the URL host without the "www." prefix.
// Unparsable URLs fall back to DefaultRakutenDomain.
func ExtractRakutenDomain(url string) string {
	parsed, err := neturl.Parse(url)
	if err != nil || parsed.Hostname() == "" {
		return DefaultRakutenDomain
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
