package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VideoInfo holds the subset of oEmbed metadata the summarizer uses.
type VideoInfo struct {
	VideoID string
	Title   string
	Author  string
}

// FallbackVideoInfo returns placeholder metadata for use when the oEmbed
// lookup fails. Metadata is best-effort; a failed lookup never aborts a run.
func FallbackVideoInfo(id string) VideoInfo {
	return VideoInfo{VideoID: id, Title: "Video " + id, Author: "Unknown"}
}

// VideoInfo fetches the video title and channel name via the oEmbed endpoint.
func (c *Client) VideoInfo(ctx context.Context, id string) (VideoInfo, error) {
	endpoint, err := url.Parse(c.oembedBase)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("youtube: parse oembed url: %w", err)
	}
	params := url.Values{}
	params.Set("url", WatchURL(id))
	params.Set("format", "json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("youtube: build oembed request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("youtube: oembed request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return VideoInfo{}, fmt.Errorf("youtube: oembed returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return VideoInfo{}, fmt.Errorf("youtube: decode oembed response: %w", err)
	}

	info := VideoInfo{
		VideoID: id,
		Title:   strings.TrimSpace(payload.Title),
		Author:  strings.TrimSpace(payload.AuthorName),
	}
	if info.Title == "" {
		info.Title = "Video " + id
	}
	if info.Author == "" {
		info.Author = "Unknown"
	}
	return info, nil
}
