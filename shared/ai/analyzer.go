package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"tubelens/shared/config"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured. Unlike
// metadata fetching, there is no degraded path without it.
var ErrMissingAPIKey = errors.New("Gemini API key is not configured")

// Analyzer submits composed prompts to a Gemini model. Generation settings
// and post-processing depend on the model family (see config.AIConfig).
type Analyzer struct {
	client *genai.Client
	cfg    *config.AIConfig
}

func NewAnalyzer(ctx context.Context, cfg *config.AIConfig) (*Analyzer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Analyzer{client: client, cfg: cfg}, nil
}

// Generate sends the prompt to the given model and returns the generated
// text, cleaned up when the model belongs to the newer family. Errors are
// not retried.
func (a *Analyzer) Generate(ctx context.Context, prompt, model string) (string, error) {
	model = a.cfg.ResolveModel(model)
	settings := a.cfg.Settings(model)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(settings.Temperature),
		MaxOutputTokens: settings.MaxOutputTokens,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := a.client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("analysis failed: empty response from model %s", model)
	}

	if a.cfg.IsNewerFamily(model) {
		text = CleanupFormatting(text)
	}

	return text, nil
}
