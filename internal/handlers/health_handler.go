package handlers

import (
	"log"
	"net/http"
	"time"

	"tubelens/internal/utils"
	"tubelens/shared/config"
)

type HealthHandler struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewHealthHandler(cfg *config.Config, logger *log.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

// HandlerHealth reports liveness plus which API credentials are configured.
func (h *HealthHandler) HandlerHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"status":    "ok",
		"message":   "video analysis service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"env": utils.Envelope{
			"gemini":  h.cfg.AI.GeminiAPIKey != "",
			"youtube": h.cfg.YouTube.APIKey != "",
		},
	})
}
