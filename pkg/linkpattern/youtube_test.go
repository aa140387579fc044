package linkpattern_test

import (
	"testing"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/linkpattern"
	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeVideoID(t *testing.T) {
	tests := []struct {
		url   string // input
		id    string // output
		found bool   // output
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=PL1&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/a-b_c-d_e-f", "a-b_c-d_e-f", true},
		{"https://youtu.be/short", "", false},
		{"https://youtu.be/dQw4w9WgXcQXX", "", false},
		{"https://example.com", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := linkpattern.ExtractYouTubeVideoID(tt.url)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestExtractYouTubeTimestamp(t *testing.T) {
	tests := []struct {
		url     string // input
		seconds int    // output
		found   bool   // output
	}{
		{"https://youtu.be/dQw4w9WgXcQ?t=42", 42, true},
		{"https://youtu.be/dQw4w9WgXcQ?t=42s", 42, true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=90", 90, true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ#t=7", 7, true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?start=30", 30, true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", 0, false},
		{"https://youtu.be/dQw4w9WgXcQ?t=1m30s", 90, true},
		{"https://youtu.be/dQw4w9WgXcQ?t=1h2m3s", 3723, true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=2m&list=x", 120, true},
		{"https://youtu.be/dQw4w9WgXcQ?t=1m30", 0, false},
		{"https://youtu.be/dQw4w9WgXcQ?t=abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			seconds, ok := linkpattern.ExtractYouTubeTimestamp(tt.url)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.seconds, seconds)
		})
	}
}
