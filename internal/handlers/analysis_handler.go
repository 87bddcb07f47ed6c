package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tubelens/internal/models"
	"tubelens/internal/summarize"
	"tubelens/internal/utils"
)

type AnalysisHandler struct {
	service *summarize.Service
	logger  *log.Logger
}

func NewAnalysisHandler(service *summarize.Service, logger *log.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: service, logger: logger}
}

func (h *AnalysisHandler) HandlerSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Println("Error decoding summarize request body:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"error": "invalid JSON request body"})
		return
	}

	result, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, summarize.ErrMissingLink), errors.Is(err, summarize.ErrInvalidLink):
			utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"error": err.Error()})
		default:
			h.logger.Println("Analysis failed:", err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{
				"error":   "analysis failed",
				"details": err.Error(),
			})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
