package config

const (
	defaultOutputDir         = "summaries"
	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "openai/gpt-4o-mini"
	defaultLLMReferer        = "https://github.com/Madmanden/yt-summarizer"
	defaultLLMTitle          = "yt-summarizer"
	defaultLLMTimeoutSeconds = 120
	defaultWatchBaseURL      = "https://www.youtube.com"
	defaultOEmbedBaseURL     = "https://www.youtube.com/oembed"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Directory: defaultOutputDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Transcript: Transcript{
			Languages:     []string{"en"},
			WatchBaseURL:  defaultWatchBaseURL,
			OEmbedBaseURL: defaultOEmbedBaseURL,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
