package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	defaultWatchBaseURL  = "https://www.youtube.com"
	defaultOEmbedBaseURL = "https://www.youtube.com/oembed"
	defaultUserAgent     = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	defaultHTTPTimeout   = 30 * time.Second
)

// Config describes the YouTube client configuration.
type Config struct {
	WatchBaseURL  string
	OEmbedBaseURL string
	UserAgent     string
	Languages     []string
	HTTPClient    *http.Client
}

// Client fetches video metadata and caption documents.
type Client struct {
	watchBase  string
	oembedBase string
	userAgent  string
	preferred  []language.Tag
	http       *http.Client
}

// New creates a Client from the supplied configuration. Language preferences
// must be valid BCP 47 tags; an empty list defaults to English.
func New(cfg Config) (*Client, error) {
	watchBase := strings.TrimSpace(cfg.WatchBaseURL)
	if watchBase == "" {
		watchBase = defaultWatchBaseURL
	}
	oembedBase := strings.TrimSpace(cfg.OEmbedBaseURL)
	if oembedBase == "" {
		oembedBase = defaultOEmbedBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	langs := cfg.Languages
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	preferred := make([]language.Tag, 0, len(langs))
	for _, raw := range langs {
		tag, err := language.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("youtube: invalid language %q: %w", raw, err)
		}
		preferred = append(preferred, tag)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Client{
		watchBase:  strings.TrimRight(watchBase, "/"),
		oembedBase: strings.TrimRight(oembedBase, "/"),
		userAgent:  userAgent,
		preferred:  preferred,
		http:       httpClient,
	}, nil
}

// get performs a GET request with browser-like headers and returns the body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	requestStart := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("youtube: execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: %s returned %d (latency=%v)", req.URL.Path, resp.StatusCode, latency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube: read response: %w", err)
	}
	return body, nil
}
