package handler

import (
	"net/http"

	"reasonbridge/internal/service"
	"reasonbridge/internal/transport/rest/middleware"
)

// AnalyticsHandler handles moderator analytics endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates an analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// FeedbackRollup handles GET /v1/analytics/feedback
func (h *AnalyticsHandler) FeedbackRollup(w http.ResponseWriter, r *http.Request) {
	moderatorID := middleware.GetModeratorID(r.Context())
	if moderatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rollup, err := h.analyticsSvc.FeedbackRollup(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rollup)
}
