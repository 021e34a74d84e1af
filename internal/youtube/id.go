package youtube

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Video IDs are 11 characters from the URL-safe base64 alphabet. The URL
// patterns are tried in order; the bare-ID form is accepted last so that
// full URLs never fall through to it.
var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
		regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
		regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	}
	bareVideoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
)

// ExtractVideoID resolves a watch URL, share URL, embed URL, or bare video ID
// to the canonical 11-character identifier.
func ExtractVideoID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errors.New("youtube: empty video reference")
	}
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(trimmed); match != nil {
			return match[1], nil
		}
	}
	if bareVideoIDPattern.MatchString(trimmed) {
		return trimmed, nil
	}
	return "", fmt.Errorf("youtube: could not extract a video ID from %q", input)
}

// WatchURL returns the canonical watch-page URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
