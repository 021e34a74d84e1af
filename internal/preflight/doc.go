// Package preflight provides readiness checks for the services and paths
// yt-summarize depends on.
//
// The CLI "yt-summarize check" command runs RunAll and renders one row per
// check: the summary output directory, the OpenRouter API, and the YouTube
// oEmbed endpoint. Checks never mutate state; in particular a missing output
// directory passes when it can still be created at save time.
package preflight
