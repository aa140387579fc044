package linkpattern

import "regexp"

// Amazon storefronts and the official shorteners.
var regexAmazonHost = regexp.MustCompile(
	`^https?://(?:www\.)?(amazon\.(?:co\.jp|com|co\.uk|de|fr|it|es|ca|com\.au|in|com\.br|com\.mx|nl|sg|ae|sa|se|pl|com\.tr|cn)|amzn\.to|amzn\.asia)(?:[/?#:]|$)`,
)

// ASIN are 10 alphanumeric characters following /dp/ or /gp/product/.
var regexAmazonASIN = regexp.MustCompile(`/(?:dp|gp/product)/([A-Z0-9]{10})(?:[/?#]|$)`)

// IsAmazonURL reports whether the URL points to an Amazon storefront or shortener.
func IsAmazonURL(url string) bool {
	return regexAmazonHost.MatchString(url)
}

// ExtractAmazonASIN returns the product identifier present in the URL path.
// Shortened URLs (amzn.to, amzn.asia) never contain one.
func ExtractAmazonASIN(url string) (string, bool) {
	if !IsAmazonURL(url) {
		return "", false
	}
	match := regexAmazonASIN.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractAmazonDomain returns the matched Amazon host (ex: "amazon.co.jp", "amzn.to").
func ExtractAmazonDomain(url string) (string, bool) {
	match := regexAmazonHost.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}
