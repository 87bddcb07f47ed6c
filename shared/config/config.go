package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	AI      AIConfig      `yaml:"ai"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

// GenerationSettings are the per-model-family generation knobs.
type GenerationSettings struct {
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	DefaultModel string `yaml:"default_model"`

	// NewerFamilyMarkers are version substrings that place a model in the
	// newer family (lower temperature, larger output, cleanup pass).
	NewerFamilyMarkers []string           `yaml:"newer_family_markers"`
	NewerSettings      GenerationSettings `yaml:"newer_settings"`
	DefaultSettings    GenerationSettings `yaml:"default_settings"`
}

// Load reads configuration once at startup: an optional yaml file first,
// then environment variables on top. The result is treated as read-only.
// Missing API keys are not an error here so the health endpoints can report
// their absence; the components that need them fail at the point of use.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.YouTube.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.GeminiAPIKey = v
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.AI.DefaultModel == "" {
		c.AI.DefaultModel = "gemini-1.5-flash"
	}
	if len(c.AI.NewerFamilyMarkers) == 0 {
		c.AI.NewerFamilyMarkers = []string{"2.0", "2.5"}
	}
	if c.AI.NewerSettings == (GenerationSettings{}) {
		c.AI.NewerSettings = GenerationSettings{Temperature: 0.3, MaxOutputTokens: 8192}
	}
	if c.AI.DefaultSettings == (GenerationSettings{}) {
		c.AI.DefaultSettings = GenerationSettings{Temperature: 0.7, MaxOutputTokens: 4096}
	}
}

// ResolveModel returns the requested model name, falling back to the
// configured default when the caller did not specify one.
func (a *AIConfig) ResolveModel(requested string) string {
	if strings.TrimSpace(requested) == "" {
		return a.DefaultModel
	}
	return requested
}

// IsNewerFamily reports whether the model belongs to the newer family.
// Detection is a substring match against configured markers rather than
// hardcoded model names.
func (a *AIConfig) IsNewerFamily(model string) bool {
	for _, marker := range a.NewerFamilyMarkers {
		if strings.Contains(model, marker) {
			return true
		}
	}
	return false
}

// Settings returns the generation settings for the given model.
func (a *AIConfig) Settings(model string) GenerationSettings {
	if a.IsNewerFamily(model) {
		return a.NewerSettings
	}
	return a.DefaultSettings
}
