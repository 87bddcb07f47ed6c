package models

import "time"

// VideoMetadata is everything we know about a video from the YouTube Data
// API. Every field is optional; Available reports whether the record came
// from a real API response or is a degraded placeholder.
type VideoMetadata struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ChannelTitle string            `json:"channel_title"`
	PublishedAt  time.Time         `json:"published_at"`
	Tags         []string          `json:"tags,omitempty"`
	CategoryID   string            `json:"category_id,omitempty"`
	ViewCount    *int64            `json:"view_count,omitempty"`
	LikeCount    *int64            `json:"like_count,omitempty"`
	CommentCount *int64            `json:"comment_count,omitempty"`
	Duration     string            `json:"duration,omitempty"`
	Thumbnails   map[string]string `json:"thumbnails,omitempty"`
	URL          string            `json:"url"`
	Available    bool              `json:"-"`
}

// AnalysisRequest is the inbound body of a summarize call.
type AnalysisRequest struct {
	YouTubeLink      string `json:"youtube_link"`
	Model            string `json:"model,omitempty"`
	AdditionalPrompt string `json:"additional_prompt,omitempty"`
}

// AnalysisQuality reports how much real context backed the analysis.
type AnalysisQuality struct {
	HasMetadata      bool   `json:"has_metadata"`
	HasTranscript    bool   `json:"has_transcript"`
	TranscriptLength int    `json:"transcript_length"`
	ContentRichness  string `json:"content_richness"`
}

// MetadataSnapshot is the excerpt of VideoMetadata echoed in responses.
type MetadataSnapshot struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	Duration     string `json:"duration"`
	ViewCount    *int64 `json:"view_count,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	URL          string `json:"url"`
}

// AnalysisResult is the outbound body of a successful summarize call.
type AnalysisResult struct {
	Success          bool             `json:"success"`
	Summary          string           `json:"summary,omitempty"`
	ModelUsed        string           `json:"model_used"`
	VideoID          string           `json:"video_id"`
	YouTubeLink      string           `json:"youtube_link"`
	AdditionalPrompt string           `json:"additional_prompt,omitempty"`
	Metadata         MetadataSnapshot `json:"metadata"`
	Quality          AnalysisQuality  `json:"analysis_quality"`
	Timestamp        string           `json:"timestamp"`
}
