package linkpattern

import "regexp"

var regexBareURL = regexp.MustCompile(`^https?://\S+$`)

// IsBareURL reports whether the text is a single http(s) URL without spaces.
func IsBareURL(url string) bool {
	return regexBareURL.MatchString(url)
}
