package summarize

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tubelens/internal/models"
	"tubelens/shared/ai"
	"tubelens/shared/config"
	"tubelens/shared/youtube"
)

var (
	// ErrMissingLink rejects requests without a video link.
	ErrMissingLink = errors.New("youtube_link is required")

	// ErrInvalidLink rejects links no 11-character video ID can be
	// extracted from.
	ErrInvalidLink = errors.New("could not extract a valid video ID from youtube_link")
)

// MetadataFetcher retrieves descriptive and statistical video data.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)
}

// TranscriptFetcher retrieves caption text for a video.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// Generator submits a composed prompt to a generative model.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// Service is the shared orchestration consumed by both entry points.
// Per request: validate, extract the video ID, fetch metadata and transcript
// in parallel (each independently fault-tolerant), compose the prompt,
// generate, and assemble the result. It holds no per-request state.
type Service struct {
	cfg         *config.Config
	metadata    MetadataFetcher // nil when no YouTube API key is configured
	transcripts TranscriptFetcher
	generator   Generator // nil when no Gemini API key is configured
	logger      *log.Logger
}

func NewService(cfg *config.Config, metadata MetadataFetcher, transcripts TranscriptFetcher, generator Generator, logger *log.Logger) *Service {
	return &Service{
		cfg:         cfg,
		metadata:    metadata,
		transcripts: transcripts,
		generator:   generator,
		logger:      logger,
	}
}

// Analyze runs one full analysis. It returns ErrMissingLink/ErrInvalidLink
// for rejected input; any other error means generation failed.
func (s *Service) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	if strings.TrimSpace(req.YouTubeLink) == "" {
		return nil, ErrMissingLink
	}

	videoID, ok := youtube.ExtractVideoID(req.YouTubeLink)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLink, req.YouTubeLink)
	}

	meta, transcript := s.fetchContext(ctx, videoID)

	model := s.cfg.AI.ResolveModel(req.Model)
	prompt := ai.BuildPrompt(meta, transcript, req.AdditionalPrompt, s.cfg.AI.IsNewerFamily(model))

	if s.generator == nil {
		return nil, fmt.Errorf("analysis failed: %w", ai.ErrMissingAPIKey)
	}

	summary, err := s.generator.Generate(ctx, prompt, model)
	if err != nil {
		return nil, err
	}

	richness := "Medium"
	if transcript != "" {
		richness = "High"
	}

	result := &models.AnalysisResult{
		Success:          true,
		Summary:          summary,
		ModelUsed:        model,
		VideoID:          videoID,
		YouTubeLink:      req.YouTubeLink,
		AdditionalPrompt: req.AdditionalPrompt,
		Metadata: models.MetadataSnapshot{
			Title:        meta.Title,
			ChannelTitle: meta.ChannelTitle,
			Duration:     youtube.FormatDuration(meta.Duration),
			ViewCount:    meta.ViewCount,
			URL:          meta.URL,
		},
		Quality: models.AnalysisQuality{
			HasMetadata:      meta.Available,
			HasTranscript:    transcript != "",
			TranscriptLength: len(transcript),
			ContentRichness:  richness,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if !meta.PublishedAt.IsZero() {
		result.Metadata.PublishedAt = meta.PublishedAt.Format(time.RFC3339)
	}

	return result, nil
}

// fetchContext runs the metadata and transcript fetches concurrently and
// settles both: a failed branch substitutes its degraded default instead of
// failing the request, and neither branch can block or corrupt the other.
func (s *Service) fetchContext(ctx context.Context, videoID string) (*models.VideoMetadata, string) {
	var (
		meta       *models.VideoMetadata
		transcript string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.fetchMetadata(gctx, videoID)
		if err != nil {
			s.logger.Printf("metadata fetch failed for %s, continuing degraded: %v", videoID, err)
			m = youtube.PlaceholderMetadata(videoID)
		}
		meta = m
		return nil
	})

	g.Go(func() error {
		t, err := s.transcripts.FetchTranscript(gctx, videoID)
		if err != nil {
			s.logger.Printf("transcript unavailable for %s: %v", videoID, err)
			t = ""
		}
		transcript = t
		return nil
	})

	// Branches always return nil; Wait only synchronizes.
	_ = g.Wait()

	return meta, transcript
}

func (s *Service) fetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	if s.metadata == nil {
		return nil, youtube.ErrMissingAPIKey
	}
	return s.metadata.FetchMetadata(ctx, videoID)
}
