// Package textutil provides text helpers for filename construction and
// transcript cleanup: sanitizing titles for safe filesystem use, rune-aware
// truncation, and whitespace normalization.
package textutil
