package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// Track describes one caption track advertised on a video's watch page.
type Track struct {
	URL          string
	Language     string
	Name         string
	Kind         string
	Translatable bool
}

// IsAutoGenerated reports whether the track was machine transcribed.
func (t Track) IsAutoGenerated() bool { return t.Kind == "asr" }

// DisplayName returns the human label for the track, falling back to the
// language code.
func (t Track) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Language
}

const captionsNeedle = `"captions":`

// CaptionTracks lists the caption tracks for a video by scraping its watch
// page. The tracklist JSON is embedded in the page; a json.Decoder reads just
// that object and ignores the surrounding script text.
func (c *Client) CaptionTracks(ctx context.Context, id string) ([]Track, error) {
	page, err := c.get(ctx, c.watchBase+"/watch?v="+url.QueryEscape(id))
	if err != nil {
		return nil, err
	}

	i := bytes.Index(page, []byte(captionsNeedle))
	if i < 0 {
		switch {
		case bytes.Contains(page, []byte(`class="g-recaptcha"`)):
			return nil, ErrRateLimited
		case !bytes.Contains(page, []byte("playabilityStatus")):
			return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, id)
		default:
			return nil, ErrNoCaptions
		}
	}

	var data struct {
		Renderer *struct {
			Tracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"`
				Translatable bool   `json:"isTranslatable"`
				Name         *struct {
					SimpleText string `json:"simpleText"`
				} `json:"name"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}
	dec := json.NewDecoder(bytes.NewReader(page[i+len(captionsNeedle):]))
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("youtube: decode caption metadata: %w", err)
	}
	if data.Renderer == nil || len(data.Renderer.Tracks) == 0 {
		return nil, ErrNoCaptions
	}

	tracks := make([]Track, 0, len(data.Renderer.Tracks))
	for _, raw := range data.Renderer.Tracks {
		track := Track{
			URL:          raw.BaseURL,
			Language:     raw.LanguageCode,
			Kind:         raw.Kind,
			Translatable: raw.Translatable,
		}
		if raw.Name != nil {
			track.Name = raw.Name.SimpleText
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// matchTrack picks the track best matching the preferred languages. When the
// match lands on an auto-generated track, a manually created track in the
// same language wins.
func matchTrack(tracks []Track, prefs []language.Tag) (Track, bool) {
	if len(tracks) == 0 || len(prefs) == 0 {
		return Track{}, false
	}
	tags := make([]language.Tag, len(tracks))
	for i, track := range tracks {
		tags[i] = language.Make(track.Language)
	}
	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(prefs...)
	if confidence < language.High {
		return Track{}, false
	}
	best := tracks[index]
	if best.IsAutoGenerated() {
		matchedBase, _ := tags[index].Base()
		for i, track := range tracks {
			if track.IsAutoGenerated() {
				continue
			}
			if base, _ := tags[i].Base(); base == matchedBase {
				return track, true
			}
		}
	}
	return best, true
}

// translatedURL rewrites a caption URL to request machine translation into
// the target language.
func translatedURL(rawURL string, target language.Tag) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("youtube: parse caption url: %w", err)
	}
	query := parsed.Query()
	query.Set("tlang", target.String())
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
