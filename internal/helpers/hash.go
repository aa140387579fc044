package helpers

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Hash is an utility to determine a MD5 hash (acceptable as not used for security reasons).
func Hash(bytes []byte) string {
	h := md5.New()
	h.Write(bytes)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ETag returns a strong entity tag for a response body.
func ETag(body []byte) string {
	return `"` + Hash(body) + `"`
}

// MatchETag reports if an If-None-Match header value contains the given tag.
func MatchETag(header, etag string) bool {
	if header == "" {
		return false
	}
	if strings.TrimSpace(header) == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
