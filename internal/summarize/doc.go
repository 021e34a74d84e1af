// Package summarize orchestrates the transcript-to-summary pipeline.
//
// A Pipeline resolves the video reference, downloads the caption transcript,
// requests an editorial summary from OpenRouter, optionally runs a second
// product-name review pass, and writes the result as a Markdown file. Progress
// lines are emitted on the configured step writer so the CLI can narrate each
// stage without claiming stdout, which is reserved for the summary itself.
package summarize
