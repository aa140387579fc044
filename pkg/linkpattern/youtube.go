package linkpattern

import (
	"regexp"
	"strconv"
)

// Video ids are exactly 11 characters. The trailing group rejects longer ids.
const youTubeID = `([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`

// Evaluated in order, the first match wins.
var regexYouTubeVideoIDs = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=` + youTubeID),
	regexp.MustCompile(`youtu\.be/` + youTubeID),
	regexp.MustCompile(`youtube\.com/embed/` + youTubeID),
	regexp.MustCompile(`youtube\.com/v/` + youTubeID),
}

var (
	regexYouTubeTimestamp = regexp.MustCompile(`[?&#]t=(\d+)s?(?:[&#]|$)`)
	// Ex: t=1h2m3s, t=1m30s, t=2m
	regexYouTubeDuration = regexp.MustCompile(`[?&#]t=(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?(?:[&#]|$)`)
	regexYouTubeStart    = regexp.MustCompile(`[?&]start=(\d+)(?:[&#]|$)`)
)

// ExtractYouTubeVideoID returns the video id of a YouTube URL.
func ExtractYouTubeVideoID(url string) (string, bool) {
	for _, r := range regexYouTubeVideoIDs {
		if match := r.FindStringSubmatch(url); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// ExtractYouTubeTimestamp returns the start position in seconds (t= or start= parameter).
func ExtractYouTubeTimestamp(url string) (int, bool) {
	if seconds, ok := extractYouTubeDuration(url); ok {
		return seconds, true
	}
	for _, r := range []*regexp.Regexp{regexYouTubeTimestamp, regexYouTubeStart} {
		match := r.FindStringSubmatch(url)
		if match == nil {
			continue
		}
		seconds, err := strconv.Atoi(match[1])
		if err != nil {
			// Overflow
			continue
		}
		return seconds, true
	}
	return 0, false
}

// extractYouTubeDuration parses t= values written with h/m units.
// Values in seconds only are left to regexYouTubeTimestamp.
func extractYouTubeDuration(url string) (int, bool) {
	match := regexYouTubeDuration.FindStringSubmatch(url)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, false
	}
	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if match[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			return 0, false
		}
		total += n * unit
	}
	return total, true
}
