package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Madmanden/yt-summarizer/internal/logging"
	"github.com/Madmanden/yt-summarizer/internal/services"
	"github.com/Madmanden/yt-summarizer/internal/services/llm"
	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

// Stage identifies this pipeline in wrapped errors and log context.
const Stage = "summarize"

// Config wires the pipeline dependencies.
type Config struct {
	Videos *youtube.Client
	LLM    *llm.Client
	Logger *slog.Logger
	// Steps receives user-facing progress lines; defaults to io.Discard.
	Steps io.Writer
}

// Options control a single run.
type Options struct {
	OutputDir       string
	FixProductNames bool
}

// Result describes a completed run.
type Result struct {
	VideoID    string
	Title      string
	Author     string
	Language   string
	Words      int
	Model      string
	Summary    string
	OutputPath string
}

// Pipeline executes the transcript-to-summary flow for one video.
type Pipeline struct {
	videos *youtube.Client
	llm    *llm.Client
	logger *slog.Logger
	steps  io.Writer
}

// New validates the dependencies and builds a Pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Videos == nil {
		return nil, services.Wrap(services.ErrConfiguration, Stage, "init", "youtube client is required", nil)
	}
	if cfg.LLM == nil {
		return nil, services.Wrap(services.ErrConfiguration, Stage, "init", "llm client is required", nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	steps := cfg.Steps
	if steps == nil {
		steps = io.Discard
	}
	return &Pipeline{videos: cfg.Videos, llm: cfg.LLM, logger: logger, steps: steps}, nil
}

// Run summarizes one video reference and writes the summary file. Metadata
// lookups are best-effort; transcript or summarization failures abort the run
// before anything is written.
func (p *Pipeline) Run(ctx context.Context, reference string, opts Options) (*Result, error) {
	if !p.llm.HasCredentials() {
		return nil, services.Wrap(services.ErrConfiguration, Stage, "credentials",
			"OpenRouter API key is required. Set OPENROUTER_API_KEY, pass --api-key, or run 'yt-summarize config init' and edit llm.api_key", nil)
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return nil, services.Wrap(services.ErrValidation, Stage, "options", "output directory is required", nil)
	}

	videoID, err := youtube.ExtractVideoID(reference)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, Stage, "parse reference", "invalid YouTube URL or video ID", err)
	}

	ctx = services.WithStage(ctx, Stage)
	ctx = services.WithVideoID(ctx, videoID)
	ctx = services.WithRequestID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, p.logger)
	logger.Info("run started", slog.String("reference", reference))

	p.step("🔍 Fetching video information...")
	info, err := p.videos.VideoInfo(ctx, videoID)
	if err != nil {
		logger.Warn("video info lookup failed", logging.Error(err))
		p.step("⚠️  Could not fetch video info: %v", err)
		info = youtube.FallbackVideoInfo(videoID)
	}

	p.step("📝 Downloading transcript...")
	transcript, err := p.videos.Transcript(ctx, videoID)
	if err != nil {
		return nil, services.Wrap(classifyTranscriptErr(err), Stage, "fetch transcript", "", err)
	}
	words := transcript.Words()
	logger.Info("transcript downloaded",
		slog.String("language", transcript.Language),
		slog.Int("words", words),
	)
	p.step("✅ Transcript downloaded (%d words)", words)

	p.step("🤖 Generating summary with %s...", p.llm.Model())
	requestStart := time.Now()
	summary, err := p.llm.Complete(ctx, "", summaryPrompt(info, transcript.Text()))
	if err != nil {
		return nil, services.Wrap(classifyLLMErr(err), Stage, "generate summary", "", err)
	}
	logger.Info("summary generated",
		slog.Duration("latency", time.Since(requestStart)),
		slog.Int("chars", len(summary)),
	)

	if opts.FixProductNames {
		p.step("🔧 Running second pass to fix product names...")
		fixed, err := p.llm.Complete(ctx, "", productNamesPrompt(info, summary))
		if err != nil {
			logger.Warn("product name pass failed, keeping first summary", logging.Error(err))
			p.step("⚠️  Second pass failed, using initial summary")
		} else {
			summary = fixed
		}
	}

	p.step("💾 Saving summary...")
	fileName := SummaryFileName(info.Title, videoID, time.Now())
	path, err := WriteSummary(opts.OutputDir, fileName, summary)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, Stage, "save summary", "", err)
	}
	logger.Info("summary saved", slog.String("path", path))
	p.step("✅ Summary saved to: %s", path)

	return &Result{
		VideoID:    videoID,
		Title:      info.Title,
		Author:     info.Author,
		Language:   transcript.Language,
		Words:      words,
		Model:      p.llm.Model(),
		Summary:    summary,
		OutputPath: path,
	}, nil
}

func (p *Pipeline) step(format string, args ...any) {
	fmt.Fprintf(p.steps, format+"\n", args...)
}

func classifyTranscriptErr(err error) error {
	switch {
	case errors.Is(err, youtube.ErrNoCaptions), errors.Is(err, youtube.ErrVideoNotFound):
		return services.ErrNotFound
	case errors.Is(err, youtube.ErrRateLimited):
		return services.ErrUnavailable
	default:
		return services.ErrTransient
	}
}

func classifyLLMErr(err error) error {
	var statusErr *llm.HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return services.ErrConfiguration
		case http.StatusTooManyRequests:
			return services.ErrUnavailable
		}
		return services.ErrTransient
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return services.ErrTimeout
	}
	return services.ErrTransient
}
