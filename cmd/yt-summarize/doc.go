// Package main hosts the yt-summarize CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the summarize
// pipeline, transcript and metadata lookups, readiness checks, and
// configuration scaffolding. It centralizes configuration resolution and
// logger setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
