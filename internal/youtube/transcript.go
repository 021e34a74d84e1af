package youtube

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"strings"

	"github.com/Madmanden/yt-summarizer/internal/textutil"
)

// Cue is a single timed caption fragment.
type Cue struct {
	Start    float64
	Duration float64
	Text     string
}

// Transcript is the ordered cue list for one caption track.
type Transcript struct {
	VideoID  string
	Language string
	Cues     []Cue
}

// Text joins the cue texts with single spaces, collapsing internal newlines.
func (t *Transcript) Text() string {
	parts := make([]string, 0, len(t.Cues))
	for _, cue := range t.Cues {
		if cleaned := textutil.CollapseWhitespace(cue.Text); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.Join(parts, " ")
}

// Words counts the whitespace-separated words across all cues.
func (t *Transcript) Words() int {
	return len(strings.Fields(t.Text()))
}

// Transcript fetches the caption track that best matches the configured
// language preferences and assembles it into cues. When no track matches, a
// translatable track is fetched with machine translation into the first
// preference; otherwise the first listed track is used as-is.
func (c *Client) Transcript(ctx context.Context, id string) (*Transcript, error) {
	tracks, err := c.CaptionTracks(ctx, id)
	if err != nil {
		return nil, err
	}

	var fetchURL, lang string
	if track, ok := matchTrack(tracks, c.preferred); ok {
		fetchURL, lang = track.URL, track.Language
	} else {
		fallback := tracks[0]
		fetchURL, lang = fallback.URL, fallback.Language
		if fallback.Translatable && len(c.preferred) > 0 {
			if translated, err := translatedURL(fallback.URL, c.preferred[0]); err == nil {
				fetchURL = translated
				lang = c.preferred[0].String()
			}
		}
	}

	cues, err := c.fetchCues(ctx, fetchURL)
	if err != nil {
		return nil, err
	}

	transcript := &Transcript{VideoID: id, Language: lang, Cues: cues}
	if transcript.Text() == "" {
		return nil, ErrNoCaptions
	}
	return transcript, nil
}

// fetchCues downloads and parses a timedtext XML document. Cue text is
// HTML-unescaped because YouTube double-escapes entities inside the XML.
func (c *Client) fetchCues(ctx context.Context, captionURL string) ([]Cue, error) {
	body, err := c.get(ctx, captionURL)
	if err != nil {
		return nil, err
	}

	var doc struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Start    float64 `xml:"start,attr"`
			Duration float64 `xml:"dur,attr"`
			Text     string  `xml:",chardata"`
		} `xml:"text"`
	}
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("youtube: decode caption xml: %w", err)
	}

	cues := make([]Cue, 0, len(doc.Texts))
	for _, item := range doc.Texts {
		cues = append(cues, Cue{
			Start:    item.Start,
			Duration: item.Duration,
			Text:     html.UnescapeString(item.Text),
		})
	}
	return cues, nil
}
