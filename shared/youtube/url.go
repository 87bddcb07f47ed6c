package youtube

import "regexp"

// videoIDPattern recognizes the known YouTube URL shapes and captures the
// token that follows, up to a #, & or ? delimiter.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

const videoIDLength = 11

// ExtractVideoID attempts to locate an 11-character video identifier in an
// arbitrary string. The second return value is false when no identifier of
// the expected length can be found; callers must check it before proceeding.
func ExtractVideoID(raw string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(raw)
	if len(m) < 2 || len(m[1]) != videoIDLength {
		return "", false
	}
	return m[1], true
}

// WatchURL returns the canonical watch URL for a video identifier.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
