package handler

import (
	"context"
	"net/http"

	"github.com/iho/paisa/internal/adapter/http/dto"
	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/usecase"
)

// AdvisoryService defines the cancellable advisory operations.
type AdvisoryService interface {
	StartInsights(ctx context.Context, lang domain.Language) *usecase.Task[usecase.Insight]
	StartTips(ctx context.Context, lang domain.Language) *usecase.Task[usecase.TipsResult]
}

// AdvisoryHandler serves AI insights and tips.
type AdvisoryHandler struct {
	advisory AdvisoryService
	language LanguageSource
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(advisory AdvisoryService, language LanguageSource) *AdvisoryHandler {
	return &AdvisoryHandler{advisory: advisory, language: language}
}

// Insights is bound to the request: a client that disconnects cancels
// the task and gets no response body.
func (h *AdvisoryHandler) Insights(w http.ResponseWriter, r *http.Request) {
	task := h.advisory.StartInsights(r.Context(), requestLanguage(r, h.language))
	defer task.Cancel()

	insight, err := task.Wait()
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, dto.InsightFromUseCase(insight))
}

func (h *AdvisoryHandler) Tips(w http.ResponseWriter, r *http.Request) {
	task := h.advisory.StartTips(r.Context(), requestLanguage(r, h.language))
	defer task.Cancel()

	tips, err := task.Wait()
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, dto.TipsFromUseCase(tips))
}
