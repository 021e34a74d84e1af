package youtube

import "errors"

var (
	// ErrNoCaptions reports a video that exists but exposes no caption tracks.
	ErrNoCaptions = errors.New("youtube: video has no captions")
	// ErrVideoNotFound reports an unknown or removed video ID.
	ErrVideoNotFound = errors.New("youtube: video not found")
	// ErrRateLimited reports that YouTube answered the watch-page request with
	// a captcha challenge instead of the video document.
	ErrRateLimited = errors.New("youtube: rate limited")
)
