package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix scopes tool-specific environment overrides (YT_SUMMARIZE_*).
const envPrefix = "yt_summarize"

// envOverrides mirrors the environment variables that may override file
// values. Field names map to YT_SUMMARIZE_* variables via envconfig.
type envOverrides struct {
	APIKey    string `split_words:"true"`
	Model     string
	OutputDir string `split_words:"true"`
	LogLevel  string `split_words:"true"`
	LogFormat string `split_words:"true"`
}

func (c *Config) normalize() error {
	// Values sourced from .env never override variables already exported
	// in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	env := envOverrides{}
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if err := c.normalizeOutput(env); err != nil {
		return err
	}
	c.normalizeLLM(env)
	c.normalizeTranscript()
	c.normalizeLogging(env)
	return nil
}

func (c *Config) normalizeOutput(env envOverrides) error {
	if dir := strings.TrimSpace(env.OutputDir); dir != "" {
		c.Output.Directory = dir
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		c.Output.Directory = defaultOutputDir
	}
	var err error
	if c.Output.Directory, err = expandPath(c.Output.Directory); err != nil {
		return fmt.Errorf("output.directory: %w", err)
	}
	return nil
}

// normalizeLLM applies environment overrides and defaults. The prefixed
// YT_SUMMARIZE_ variables win over the well-known OPENROUTER_ ones.
func (c *Config) normalizeLLM(env envOverrides) {
	if key := strings.TrimSpace(env.APIKey); key != "" {
		c.LLM.APIKey = key
	} else if value, ok := os.LookupEnv("OPENROUTER_API_KEY"); ok && strings.TrimSpace(value) != "" {
		c.LLM.APIKey = strings.TrimSpace(value)
	}
	if model := strings.TrimSpace(env.Model); model != "" {
		c.LLM.Model = model
	} else if value, ok := os.LookupEnv("OPENROUTER_MODEL"); ok && strings.TrimSpace(value) != "" {
		c.LLM.Model = strings.TrimSpace(value)
	}
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Model == "" {
		c.LLM.Model = defaultLLMModel
	}
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	if c.LLM.Referer == "" {
		c.LLM.Referer = defaultLLMReferer
	}
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)
	if c.LLM.Title == "" {
		c.LLM.Title = defaultLLMTitle
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
}

func (c *Config) normalizeTranscript() {
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en"}
	} else {
		langs := make([]string, 0, len(c.Transcript.Languages))
		seen := make(map[string]struct{}, len(c.Transcript.Languages))
		for _, lang := range c.Transcript.Languages {
			normalized := strings.ToLower(strings.TrimSpace(lang))
			if normalized == "" {
				continue
			}
			if _, exists := seen[normalized]; exists {
				continue
			}
			seen[normalized] = struct{}{}
			langs = append(langs, normalized)
		}
		if len(langs) == 0 {
			langs = []string{"en"}
		}
		c.Transcript.Languages = langs
	}
	c.Transcript.WatchBaseURL = strings.TrimSpace(c.Transcript.WatchBaseURL)
	if c.Transcript.WatchBaseURL == "" {
		c.Transcript.WatchBaseURL = defaultWatchBaseURL
	}
	c.Transcript.OEmbedBaseURL = strings.TrimSpace(c.Transcript.OEmbedBaseURL)
	if c.Transcript.OEmbedBaseURL == "" {
		c.Transcript.OEmbedBaseURL = defaultOEmbedBaseURL
	}
}

func (c *Config) normalizeLogging(env envOverrides) {
	if format := strings.TrimSpace(env.LogFormat); format != "" {
		c.Logging.Format = format
	}
	if level := strings.TrimSpace(env.LogLevel); level != "" {
		c.Logging.Level = level
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
