package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	// Same content = same hash
	assert.Equal(t, Hash([]byte("same")), Hash([]byte("same")))
	// Different contents = different hashes
	assert.NotEqual(t, Hash([]byte("same")), Hash([]byte("different")))
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", Hash([]byte("hello")))
}

func TestETag(t *testing.T) {
	assert.Equal(t, `"5d41402abc4b2a76b9719d911017c592"`, ETag([]byte("hello")))
}

func TestMatchETag(t *testing.T) {
	etag := ETag([]byte("hello"))

	var tests = []struct {
		name   string
		header string // input
		match  bool   // output
	}{
		{"Empty", "", false},
		{"Exact", etag, true},
		{"Weak", "W/" + etag, true},
		{"List", `"other", ` + etag, true},
		{"Wildcard", "*", true},
		{"Different", `"other"`, false},
		{"Unquoted", "5d41402abc4b2a76b9719d911017c592", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, MatchETag(tt.header, etag))
		})
	}
}
