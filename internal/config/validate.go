package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
//
// The API key is deliberately not required here: transcript, info, and
// config subcommands work without one, and the summarize pipeline reports
// a missing key itself before any network traffic.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateTranscript(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Directory) == "" {
		return errors.New("output.directory must be set")
	}
	return nil
}

func (c *Config) validateLLM() error {
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		return errors.New("llm.base_url must be set")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model must be set")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateTranscript() error {
	if len(c.Transcript.Languages) == 0 {
		return errors.New("transcript.languages must include at least one language")
	}
	for _, lang := range c.Transcript.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("transcript.languages: invalid tag %q", lang)
		}
	}
	if strings.TrimSpace(c.Transcript.WatchBaseURL) == "" {
		return errors.New("transcript.watch_base_url must be set")
	}
	if strings.TrimSpace(c.Transcript.OEmbedBaseURL) == "" {
		return errors.New("transcript.oembed_base_url must be set")
	}
	return nil
}
