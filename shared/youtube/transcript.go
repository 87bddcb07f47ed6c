package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoTranscript is returned when a video has no retrievable captions.
// Callers treat any transcript error as absence, never as a request failure.
var ErrNoTranscript = errors.New("no transcript available")

// TranscriptFetcher retrieves caption text by scraping the watch page for
// the player response and downloading the referenced timedtext track.
type TranscriptFetcher struct {
	httpClient *http.Client
}

func NewTranscriptFetcher() *TranscriptFetcher {
	return &TranscriptFetcher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// captionTrack from the YouTube player response JSON.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

// timedText XML structure served by the caption track URL.
type timedText struct {
	XMLName xml.Name   `xml:"transcript"`
	Texts   []textNode `xml:"text"`
}

type textNode struct {
	Start    string `xml:"start,attr"`
	Duration string `xml:"dur,attr"`
	Text     string `xml:",chardata"`
}

// FetchTranscript returns the full caption text for a video, fragments
// joined by single spaces in chronological order.
func (f *TranscriptFetcher) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, WatchURL(videoID), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// Browser-like headers to avoid bot detection
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read watch page: %w", err)
	}

	tracks, err := extractCaptionTracks(string(body))
	if err != nil {
		return "", err
	}

	track := pickTrack(tracks)

	text, err := f.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty caption track for video %s", ErrNoTranscript, videoID)
	}

	return text, nil
}

// playerResponse is the slice of ytInitialPlayerResponse we care about.
type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// extractCaptionTracks parses caption track info out of the watch page HTML
// by locating the ytInitialPlayerResponse JSON and matching braces to find
// its end.
func extractCaptionTracks(pageContent string) ([]captionTrack, error) {
	const marker = "ytInitialPlayerResponse = "
	startIdx := strings.Index(pageContent, marker)
	if startIdx == -1 {
		return nil, fmt.Errorf("%w: no player response found in page", ErrNoTranscript)
	}
	startIdx += len(marker)

	depth := 0
	endIdx := startIdx
	for endIdx < len(pageContent) {
		switch pageContent[endIdx] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				endIdx++
				goto found
			}
		}
		endIdx++
	}
	return nil, fmt.Errorf("%w: malformed player response JSON", ErrNoTranscript)

found:
	var player playerResponse
	if err := json.Unmarshal([]byte(pageContent[startIdx:endIdx]), &player); err != nil {
		return nil, fmt.Errorf("%w: failed to parse player response: %v", ErrNoTranscript, err)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: captions are disabled for this video", ErrNoTranscript)
	}

	return tracks, nil
}

// pickTrack prefers an English track, falling back to the first available.
func pickTrack(tracks []captionTrack) captionTrack {
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	return tracks[0]
}

func (f *TranscriptFetcher) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create transcript request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch caption track: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read caption track: %w", err)
	}

	return parseTimedText(body)
}

// parseTimedText flattens a timedtext XML document into one string,
// fragments joined by single spaces.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("%w: failed to parse caption XML: %v", ErrNoTranscript, err)
	}

	var sb strings.Builder
	for _, node := range tt.Texts {
		// Caption payloads arrive double-encoded (&amp;#39; and friends)
		text := strings.TrimSpace(html.UnescapeString(node.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
