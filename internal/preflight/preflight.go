package preflight

import (
	"context"

	"github.com/Madmanden/yt-summarizer/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config: the summary
// output directory, the OpenRouter API, and the YouTube oEmbed endpoint.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckOutputDirectory("Output directory", cfg.Output.Directory),
		CheckLLM(ctx, "OpenRouter API", cfg.GetLLM()),
		CheckYouTube(ctx, cfg.Transcript.OEmbedBaseURL),
	}
}

// AllPassed reports whether every check in results succeeded.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
