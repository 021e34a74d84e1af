// Package config loads, normalizes, and validates yt-summarize configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// OPENROUTER_API_KEY and the YT_SUMMARIZE_ prefix, including values sourced
// from a local .env file. The Config type centralizes every knob the CLI
// needs, so output locations, OpenRouter credentials, and caption language
// preferences are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
