package summarize_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Madmanden/yt-summarizer/internal/logging"
	"github.com/Madmanden/yt-summarizer/internal/services"
	"github.com/Madmanden/yt-summarizer/internal/services/llm"
	"github.com/Madmanden/yt-summarizer/internal/summarize"
	"github.com/Madmanden/yt-summarizer/internal/testsupport"
	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

const testVideoID = testsupport.VideoID

func newVideos(t *testing.T, server *httptest.Server) *youtube.Client {
	t.Helper()
	client, err := youtube.New(youtube.Config{
		WatchBaseURL:  server.URL,
		OEmbedBaseURL: server.URL + "/oembed",
		Languages:     []string{"en"},
		HTTPClient:    server.Client(),
	})
	if err != nil {
		t.Fatalf("youtube.New returned error: %v", err)
	}
	return client
}

func newLLM(t *testing.T, server *httptest.Server, apiKey string) *llm.Client {
	t.Helper()
	return llm.NewClient(llm.Config{
		APIKey:  apiKey,
		BaseURL: server.URL,
		Model:   "openai/gpt-4o-mini",
	}, llm.WithHTTPClient(server.Client()))
}

func newPipeline(t *testing.T, videos *youtube.Client, client *llm.Client, steps io.Writer) *summarize.Pipeline {
	t.Helper()
	pipeline, err := summarize.New(summarize.Config{
		Videos: videos,
		LLM:    client,
		Logger: logging.NewNop(),
		Steps:  steps,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return pipeline
}

func TestRunWritesSummaryFile(t *testing.T) {
	videoServer := testsupport.VideoServer(t, nil)
	var prompts []string
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		prompts = append(prompts, testsupport.DecodeChatRequest(t, r).Prompt)
		fmt.Fprint(w, testsupport.CompletionJSON("## Overview\n\nA careful walkthrough."))
	})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	var steps bytes.Buffer
	pipeline := newPipeline(t, newVideos(t, videoServer), newLLM(t, llmServer, "test-key"), &steps)

	result, err := pipeline.Run(context.Background(), "https://www.youtube.com/watch?v="+testVideoID, summarize.Options{OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.VideoID != testVideoID {
		t.Fatalf("unexpected video id: %q", result.VideoID)
	}
	if result.Title != "Weekend Build" || result.Author != "Maker Lab" {
		t.Fatalf("unexpected metadata: %q by %q", result.Title, result.Author)
	}
	if result.Words != 7 {
		t.Fatalf("unexpected word count: %d", result.Words)
	}
	if result.Summary != "## Overview\n\nA careful walkthrough." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one summary file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "Weekend Build-"+testVideoID+"_") || !strings.HasSuffix(name, ".md") {
		t.Fatalf("unexpected file name: %q", name)
	}
	if result.OutputPath != filepath.Join(outputDir, name) {
		t.Fatalf("unexpected output path: %q", result.OutputPath)
	}
	content, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(content) != result.Summary {
		t.Fatalf("file should hold exactly the summary text, got %q", content)
	}

	if len(prompts) != 1 {
		t.Fatalf("expected one llm request, got %d", len(prompts))
	}
	if !strings.Contains(prompts[0], "VIDEO TITLE: Weekend Build") {
		t.Fatalf("prompt missing video title: %s", prompts[0])
	}
	if !strings.Contains(prompts[0], testsupport.TranscriptText) {
		t.Fatalf("prompt missing transcript text: %s", prompts[0])
	}
	if !strings.Contains(steps.String(), "Summary saved to") {
		t.Fatalf("missing save step line: %s", steps.String())
	}
}

func TestRunStopsBeforeLLMWhenTranscriptMissing(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>{"playabilityStatus":{"status":"OK"}}</body></html>`)
	})
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Weekend Build","author_name":"Maker Lab"}`)
	})
	var llmHits int
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		llmHits++
		fmt.Fprint(w, testsupport.CompletionJSON("unused"))
	})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	pipeline := newPipeline(t, newVideos(t, server), newLLM(t, llmServer, "test-key"), io.Discard)

	_, err := pipeline.Run(context.Background(), testVideoID, summarize.Options{OutputDir: outputDir})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
	if !errors.Is(err, youtube.ErrNoCaptions) {
		t.Fatalf("expected no-captions cause, got %v", err)
	}
	if llmHits != 0 {
		t.Fatalf("expected no llm requests, got %d", llmHits)
	}
	if _, statErr := os.Stat(outputDir); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatal("expected no output directory")
	}
}

func TestRunRequiresAPIKeyBeforeAnyRequest(t *testing.T) {
	var videoHits int
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		videoHits++
		http.NotFound(w, r)
	})
	keyless := llm.NewClient(llm.Config{Model: "openai/gpt-4o-mini"})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	pipeline := newPipeline(t, newVideos(t, server), keyless, io.Discard)

	_, err := pipeline.Run(context.Background(), testVideoID, summarize.Options{OutputDir: outputDir})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENROUTER_API_KEY") {
		t.Fatalf("expected remediation hint, got %v", err)
	}
	if videoHits != 0 {
		t.Fatalf("expected no youtube requests, got %d", videoHits)
	}
	if _, statErr := os.Stat(outputDir); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatal("expected no output directory")
	}
}

func TestRunRejectsInvalidReference(t *testing.T) {
	var videoHits int
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		videoHits++
		http.NotFound(w, r)
	})
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testsupport.CompletionJSON("unused"))
	})
	pipeline := newPipeline(t, newVideos(t, server), newLLM(t, llmServer, "test-key"), io.Discard)

	_, err := pipeline.Run(context.Background(), "definitely not a video", summarize.Options{OutputDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid YouTube URL") {
		t.Fatalf("unexpected message: %v", err)
	}
	if videoHits != 0 {
		t.Fatalf("expected no youtube requests, got %d", videoHits)
	}
}

func TestRunFixProductNamesRunsSecondPass(t *testing.T) {
	videoServer := testsupport.VideoServer(t, nil)
	var prompts []string
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		prompts = append(prompts, testsupport.DecodeChatRequest(t, r).Prompt)
		if len(prompts) == 1 {
			fmt.Fprint(w, testsupport.CompletionJSON("The Fairphone Five looks solid."))
			return
		}
		fmt.Fprint(w, testsupport.CompletionJSON("The Fairphone 5 looks solid."))
	})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	pipeline := newPipeline(t, newVideos(t, videoServer), newLLM(t, llmServer, "test-key"), io.Discard)

	result, err := pipeline.Run(context.Background(), testVideoID, summarize.Options{OutputDir: outputDir, FixProductNames: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected two llm requests, got %d", len(prompts))
	}
	if !strings.Contains(prompts[1], "product name accuracy reviewer") {
		t.Fatalf("second prompt is not the review prompt: %s", prompts[1])
	}
	if !strings.Contains(prompts[1], "The Fairphone Five looks solid.") {
		t.Fatalf("second prompt missing first-pass summary: %s", prompts[1])
	}
	if result.Summary != "The Fairphone 5 looks solid." {
		t.Fatalf("unexpected final summary: %q", result.Summary)
	}
	content, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(content) != result.Summary {
		t.Fatalf("file content mismatch: %q", content)
	}
}

func TestRunKeepsFirstSummaryWhenSecondPassFails(t *testing.T) {
	videoServer := testsupport.VideoServer(t, nil)
	var calls int
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, testsupport.CompletionJSON("First pass summary."))
			return
		}
		http.Error(w, `{"error":"overloaded"}`, http.StatusInternalServerError)
	})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	var steps bytes.Buffer
	pipeline := newPipeline(t, newVideos(t, videoServer), newLLM(t, llmServer, "test-key"), &steps)

	result, err := pipeline.Run(context.Background(), testVideoID, summarize.Options{OutputDir: outputDir, FixProductNames: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected two llm requests, got %d", calls)
	}
	if result.Summary != "First pass summary." {
		t.Fatalf("expected first summary to survive, got %q", result.Summary)
	}
	if !strings.Contains(steps.String(), "using initial summary") {
		t.Fatalf("missing fallback step line: %s", steps.String())
	}
}

func TestRunFallsBackWhenVideoInfoUnavailable(t *testing.T) {
	videoServer := testsupport.VideoServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	var prompts []string
	llmServer := testsupport.LLMServer(t, func(w http.ResponseWriter, r *http.Request) {
		prompts = append(prompts, testsupport.DecodeChatRequest(t, r).Prompt)
		fmt.Fprint(w, testsupport.CompletionJSON("Summary text."))
	})
	outputDir := filepath.Join(t.TempDir(), "summaries")
	var steps bytes.Buffer
	pipeline := newPipeline(t, newVideos(t, videoServer), newLLM(t, llmServer, "test-key"), &steps)

	result, err := pipeline.Run(context.Background(), testVideoID, summarize.Options{OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Title != "Video "+testVideoID || result.Author != "Unknown" {
		t.Fatalf("expected placeholder metadata, got %q by %q", result.Title, result.Author)
	}
	if len(prompts) != 1 || !strings.Contains(prompts[0], "VIDEO TITLE: Video "+testVideoID) {
		t.Fatalf("prompt missing placeholder title: %v", prompts)
	}
	if !strings.Contains(steps.String(), "Could not fetch video info") {
		t.Fatalf("missing metadata warning: %s", steps.String())
	}
	name := filepath.Base(result.OutputPath)
	if !strings.HasPrefix(name, "Video "+testVideoID+"-"+testVideoID+"_") {
		t.Fatalf("unexpected file name: %q", name)
	}
}
