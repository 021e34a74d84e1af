// Package testsupport provides shared HTTP fixtures for tests that exercise
// the YouTube scrape and OpenRouter chat-completion endpoints.
package testsupport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// VideoID is a stable video identifier used across test fixtures.
const VideoID = "dQw4w9WgXcQ"

// TranscriptText is the caption text assembled from TranscriptXML.
const TranscriptText = "Building the tool took a full weekend"

// TranscriptXML is a minimal timedtext document with two cues.
const TranscriptXML = `<?xml version="1.0" encoding="utf-8"?><transcript>` +
	`<text start="0.0" dur="2.5">Building the tool</text>` +
	`<text start="2.5" dur="3.1">took a full weekend</text>` +
	`</transcript>`

// WatchPage returns a watch-page document advertising a single English
// caption track served from captionURL.
func WatchPage(captionURL string) string {
	return `<!DOCTYPE html><html><body><script>var ytInitialPlayerResponse = ` +
		`{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
		fmt.Sprintf(`{"baseUrl":%q,"languageCode":"en","isTranslatable":true,"name":{"simpleText":"English"}}`, captionURL) +
		`]}},"videoDetails":{"videoId":"` + VideoID + `"}};</script></body></html>`
}

// VideoServer serves a watch page, caption XML, and oEmbed metadata. A nil
// oembed handler installs a default returning "Weekend Build" by "Maker Lab".
func VideoServer(t testing.TB, oembed http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, WatchPage(server.URL+"/api/timedtext"))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, TranscriptXML)
	})
	if oembed == nil {
		oembed = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"title":"Weekend Build","author_name":"Maker Lab"}`)
		}
	}
	mux.HandleFunc("/oembed", oembed)
	return server
}

// LLMServer wraps handler in an httptest server that is closed with the test.
func LLMServer(t testing.TB, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CompletionJSON builds a chat-completion response body carrying the given
// message content.
func CompletionJSON(content string) string {
	payload := map[string]any{
		"choices": []map[string]any{{"message": map[string]any{"content": content}}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// ChatRequest captures the fields tests assert on from a chat-completion
// request.
type ChatRequest struct {
	Auth   string
	Model  string
	Prompt string
}

// DecodeChatRequest reads the bearer auth header, model, and final message
// content from a chat-completion request. Decode problems are reported on t
// without stopping the server goroutine.
func DecodeChatRequest(t testing.TB, r *http.Request) ChatRequest {
	t.Helper()
	var payload struct {
		Model    string `json:"model"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		t.Errorf("decode chat request: %v", err)
		return ChatRequest{}
	}
	req := ChatRequest{
		Auth:  r.Header.Get("Authorization"),
		Model: payload.Model,
	}
	if len(payload.Messages) > 0 {
		req.Prompt = payload.Messages[len(payload.Messages)-1].Content
	}
	return req
}
