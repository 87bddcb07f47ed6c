package summarize

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubelens/internal/models"
	"tubelens/shared/ai"
	"tubelens/shared/config"
)

type fakeMetadataFetcher struct {
	meta *models.VideoMetadata
	err  error
}

func (f *fakeMetadataFetcher) FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	return f.meta, f.err
}

type fakeTranscriptFetcher struct {
	text string
	err  error
}

func (f *fakeTranscriptFetcher) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	return f.text, f.err
}

type fakeGenerator struct {
	summary    string
	err        error
	lastPrompt string
	lastModel  string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, model string) (string, error) {
	f.lastPrompt = prompt
	f.lastModel = model
	return f.summary, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			DefaultModel:       "gemini-1.5-flash",
			NewerFamilyMarkers: []string{"2.0", "2.5"},
		},
	}
}

func realMetadata(videoID string) *models.VideoMetadata {
	views := int64(42000)
	return &models.VideoMetadata{
		ID:           videoID,
		Title:        "Some Video",
		ChannelTitle: "Some Channel",
		Duration:     "PT4M13S",
		ViewCount:    &views,
		PublishedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		URL:          "https://www.youtube.com/watch?v=" + videoID,
		Available:    true,
	}
}

func newTestService(meta MetadataFetcher, transcripts TranscriptFetcher, gen Generator) *Service {
	return NewService(testConfig(), meta, transcripts, gen, log.New(io.Discard, "", 0))
}

const testLink = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestAnalyzeValidation(t *testing.T) {
	svc := newTestService(nil, &fakeTranscriptFetcher{}, &fakeGenerator{summary: "s"})

	t.Run("MissingLink", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{})
		assert.ErrorIs(t, err, ErrMissingLink)
	})

	t.Run("BlankLink", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: "   "})
		assert.ErrorIs(t, err, ErrMissingLink)
	})

	t.Run("UnparseableLink", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: "https://example.com/nope"})
		assert.ErrorIs(t, err, ErrInvalidLink)
	})
}

func TestAnalyzeSuccess(t *testing.T) {
	gen := &fakeGenerator{summary: "generated summary"}
	svc := newTestService(
		&fakeMetadataFetcher{meta: realMetadata("dQw4w9WgXcQ")},
		&fakeTranscriptFetcher{text: "full transcript text"},
		gen,
	)

	result, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "generated summary", result.Summary)
	assert.Equal(t, "dQw4w9WgXcQ", result.VideoID)
	assert.Equal(t, testLink, result.YouTubeLink)
	assert.Equal(t, "gemini-1.5-flash", result.ModelUsed)
	assert.Equal(t, "gemini-1.5-flash", gen.lastModel)
	assert.Equal(t, "Some Video", result.Metadata.Title)
	assert.Equal(t, "4m 13s", result.Metadata.Duration)
	assert.True(t, result.Quality.HasMetadata)
	assert.True(t, result.Quality.HasTranscript)
	assert.Equal(t, len("full transcript text"), result.Quality.TranscriptLength)
	assert.Equal(t, "High", result.Quality.ContentRichness)
	assert.NotEmpty(t, result.Timestamp)

	assert.Contains(t, gen.lastPrompt, "Title: Some Video")
	assert.Contains(t, gen.lastPrompt, "full transcript text")
}

func TestAnalyzeModelOverride(t *testing.T) {
	gen := &fakeGenerator{summary: "s"}
	svc := newTestService(
		&fakeMetadataFetcher{meta: realMetadata("dQw4w9WgXcQ")},
		&fakeTranscriptFetcher{},
		gen,
	)

	result, err := svc.Analyze(context.Background(), &models.AnalysisRequest{
		YouTubeLink: testLink,
		Model:       "gemini-2.5-pro",
	})
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", result.ModelUsed)
	assert.Equal(t, "gemini-2.5-pro", gen.lastModel)
}

func TestAnalyzeMetadataFailureDegrades(t *testing.T) {
	svc := newTestService(
		&fakeMetadataFetcher{err: errors.New("quota exceeded")},
		&fakeTranscriptFetcher{text: "transcript"},
		&fakeGenerator{summary: "s"},
	)

	result, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Quality.HasMetadata)
	assert.Equal(t, "Title unavailable", result.Metadata.Title)
	assert.True(t, result.Quality.HasTranscript)
}

func TestAnalyzeWithoutMetadataFetcher(t *testing.T) {
	// No YouTube API key configured: every request degrades to placeholder metadata.
	svc := newTestService(nil, &fakeTranscriptFetcher{text: "transcript"}, &fakeGenerator{summary: "s"})

	result, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	require.NoError(t, err)

	assert.False(t, result.Quality.HasMetadata)
	assert.Equal(t, "Title unavailable", result.Metadata.Title)
}

func TestAnalyzeTranscriptFailureDegrades(t *testing.T) {
	svc := newTestService(
		&fakeMetadataFetcher{meta: realMetadata("dQw4w9WgXcQ")},
		&fakeTranscriptFetcher{err: errors.New("captions disabled")},
		&fakeGenerator{summary: "s"},
	)

	result, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Quality.HasTranscript)
	assert.Equal(t, 0, result.Quality.TranscriptLength)
	assert.Equal(t, "Medium", result.Quality.ContentRichness)
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	svc := newTestService(
		&fakeMetadataFetcher{meta: realMetadata("dQw4w9WgXcQ")},
		&fakeTranscriptFetcher{},
		&fakeGenerator{err: errors.New("analysis failed: model unavailable")},
	)

	_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestAnalyzeWithoutGenerator(t *testing.T) {
	svc := newTestService(nil, &fakeTranscriptFetcher{}, nil)

	_, err := svc.Analyze(context.Background(), &models.AnalysisRequest{YouTubeLink: testLink})
	assert.ErrorIs(t, err, ai.ErrMissingAPIKey)
}
