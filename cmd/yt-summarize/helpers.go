package main

import (
	"strings"

	"github.com/Madmanden/yt-summarizer/internal/config"
	"github.com/Madmanden/yt-summarizer/internal/services/llm"
	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

// videosClient builds a YouTube client from the [transcript] config section.
func videosClient(cfg *config.Config) (*youtube.Client, error) {
	return youtube.New(youtube.Config{
		WatchBaseURL:  cfg.Transcript.WatchBaseURL,
		OEmbedBaseURL: cfg.Transcript.OEmbedBaseURL,
		Languages:     cfg.Transcript.Languages,
	})
}

// llmClient builds an OpenRouter client, applying CLI flag overrides on top
// of the configured values.
func llmClient(cfg *config.Config, apiKey, model string) *llm.Client {
	settings := cfg.GetLLM()
	if key := strings.TrimSpace(apiKey); key != "" {
		settings.APIKey = key
	}
	if name := strings.TrimSpace(model); name != "" {
		settings.Model = name
	}
	return llm.NewClient(llm.Config{
		APIKey:         settings.APIKey,
		BaseURL:        settings.BaseURL,
		Model:          settings.Model,
		Referer:        settings.Referer,
		Title:          settings.Title,
		TimeoutSeconds: settings.TimeoutSeconds,
	})
}

// redactKey masks an API key for display, keeping a short suffix so the user
// can tell which key is active.
func redactKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
