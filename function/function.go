// Package function exposes the analysis service as a single http.Handler,
// suitable for function runtimes that route every method and path to one
// entry point. Unlike the server, it handles CORS preflight and method
// rejection itself.
package function

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tubelens/internal/models"
	"tubelens/internal/summarize"
	"tubelens/internal/utils"
	"tubelens/shared/config"
)

type Function struct {
	cfg     *config.Config
	service *summarize.Service
	logger  *log.Logger
}

func New(cfg *config.Config, service *summarize.Service, logger *log.Logger) *Function {
	return &Function{cfg: cfg, service: service, logger: logger}
}

// Handler dispatches one invocation: OPTIONS preflight, GET health,
// POST analysis; anything else is a 405.
func (f *Function) Handler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodGet:
		f.health(w)
	case http.MethodPost:
		f.summarize(w, r)
	default:
		utils.WriteJSON(w, http.StatusMethodNotAllowed, utils.Envelope{"error": "method not allowed"})
	}
}

func (f *Function) health(w http.ResponseWriter) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"status":              "ok",
		"message":             "video analysis function is running",
		"timestamp":           time.Now().UTC().Format(time.RFC3339),
		"geminiApiKeyExists":  f.cfg.AI.GeminiAPIKey != "",
		"youtubeApiKeyExists": f.cfg.YouTube.APIKey != "",
		"features": []string{
			"video_metadata",
			"transcript_extraction",
			"ai_analysis",
		},
	})
}

func (f *Function) summarize(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.logger.Println("Error decoding request body:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"error": "invalid JSON request body"})
		return
	}

	result, err := f.service.Analyze(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, summarize.ErrMissingLink), errors.Is(err, summarize.ErrInvalidLink):
			utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"error": err.Error()})
		default:
			f.logger.Println("Analysis failed:", err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{
				"error":   "analysis failed",
				"details": err.Error(),
			})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}
