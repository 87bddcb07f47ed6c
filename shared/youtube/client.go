package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"tubelens/internal/models"
)

var (
	// ErrMissingAPIKey is returned when no YouTube Data API key is configured.
	ErrMissingAPIKey = errors.New("YouTube API key is not configured")

	// ErrVideoNotFound is returned when the API responds with zero items.
	ErrVideoNotFound = errors.New("video not found")
)

// Client fetches public video metadata from the YouTube Data API using
// API-key access. It is safe for concurrent use.
type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchMetadata retrieves snippet, content details and statistics for a
// single video. Zero items means the video does not exist or is not public.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	call := c.service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for video %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	item := resp.Items[0]
	meta := &models.VideoMetadata{
		ID:        videoID,
		URL:       WatchURL(videoID),
		Available: true,
	}

	if item.Snippet != nil {
		meta.Title = item.Snippet.Title
		meta.Description = item.Snippet.Description
		meta.ChannelTitle = item.Snippet.ChannelTitle
		meta.Tags = item.Snippet.Tags
		meta.CategoryID = item.Snippet.CategoryId
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			meta.PublishedAt = publishedAt
		}
		meta.Thumbnails = thumbnailURLs(item.Snippet.Thumbnails)
	}

	if item.ContentDetails != nil {
		meta.Duration = item.ContentDetails.Duration
	}

	if item.Statistics != nil {
		views := int64(item.Statistics.ViewCount)
		likes := int64(item.Statistics.LikeCount)
		comments := int64(item.Statistics.CommentCount)
		meta.ViewCount = &views
		meta.LikeCount = &likes
		meta.CommentCount = &comments
	}

	return meta, nil
}

// PlaceholderMetadata returns the degraded record substituted when the real
// fetch fails, so analysis can proceed with reduced context.
func PlaceholderMetadata(videoID string) *models.VideoMetadata {
	return &models.VideoMetadata{
		ID:           videoID,
		Title:        "Title unavailable",
		ChannelTitle: "Unknown channel",
		URL:          WatchURL(videoID),
	}
}

func thumbnailURLs(details *youtube.ThumbnailDetails) map[string]string {
	if details == nil {
		return nil
	}

	urls := make(map[string]string)
	for size, thumb := range map[string]*youtube.Thumbnail{
		"default":  details.Default,
		"medium":   details.Medium,
		"high":     details.High,
		"standard": details.Standard,
		"maxres":   details.Maxres,
	} {
		if thumb != nil && thumb.Url != "" {
			urls[size] = thumb.Url
		}
	}

	if len(urls) == 0 {
		return nil
	}
	return urls
}
