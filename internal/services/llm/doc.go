// Package llm provides the OpenRouter chat-completions client used for
// summary generation.
//
// This package is used by:
//   - Summary stage: produce the editorial summary from a transcript
//   - Product-name pass: review a summary for misheard product names
//   - Preflight: verify the API key and model are usable
//
// # Configuration
//
// Requires api_key and model; base_url, referer, title, and timeout are
// optional. The default base URL targets OpenRouter's chat-completions
// endpoint.
//
// # Entry Points
//
// NewClient: construct a client from Config.
// Client.Complete: send system/user prompts, receive the model's text.
// Client.HealthCheck: issue a minimal completion to verify credentials.
//
// # Request Behaviour
//
// Each call issues exactly one HTTP request. Failures surface as typed
// errors (HTTP status with body and Retry-After, or empty-content with a
// response snippet) so callers can report them precisely; callers decide
// whether a run continues, as with the product-name pass falling back to
// the unreviewed summary.
package llm
