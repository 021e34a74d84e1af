package summarize

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Madmanden/yt-summarizer/internal/fileutil"
	"github.com/Madmanden/yt-summarizer/internal/textutil"
)

// maxTitleRunes bounds the title portion of generated file names.
const maxTitleRunes = 100

const timestampLayout = "20060102_150405"

// SummaryFileName builds the markdown file name for a video summary.
func SummaryFileName(title, videoID string, now time.Time) string {
	base := textutil.TruncateRunes(textutil.SanitizeFileName(title), maxTitleRunes)
	if base == "" {
		base = "video"
	}
	return fmt.Sprintf("%s-%s_%s.md", base, videoID, now.Format(timestampLayout))
}

// WriteSummary writes the summary text under dir, creating the directory if
// needed, and returns the full path. The file holds the summary text alone.
func WriteSummary(dir, fileName, summary string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, fileName)
	if err := fileutil.WriteFileAtomic(path, []byte(summary), 0o644); err != nil {
		return "", fmt.Errorf("write summary %q: %w", path, err)
	}
	return path, nil
}
