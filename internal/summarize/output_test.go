package summarize_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Madmanden/yt-summarizer/internal/summarize"
)

func TestSummaryFileName(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	name := summarize.SummaryFileName("AC/DC: Back in Black", testVideoID, now)
	want := "AC-DC- Back in Black-" + testVideoID + "_20260314_092653.md"
	if name != want {
		t.Fatalf("unexpected name: got %q, want %q", name, want)
	}

	long := strings.Repeat("a", 150)
	name = summarize.SummaryFileName(long, testVideoID, now)
	if !strings.HasPrefix(name, strings.Repeat("a", 100)+"-"+testVideoID+"_") {
		t.Fatalf("expected title truncated to 100 runes: %q", name)
	}

	name = summarize.SummaryFileName("???", testVideoID, now)
	if name != "video-"+testVideoID+"_20260314_092653.md" {
		t.Fatalf("expected placeholder base for unusable title: %q", name)
	}
}

func TestWriteSummaryCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "summaries")

	path, err := summarize.WriteSummary(dir, "note.md", "hello\n")
	if err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	if path != filepath.Join(dir, "note.md") {
		t.Fatalf("unexpected path: %q", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(content) != "hello\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}
