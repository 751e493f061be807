package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"reasonbridge/internal/model"
	"reasonbridge/internal/service"
)

// FeedbackHandler handles feedback and preview endpoints
type FeedbackHandler struct {
	feedbackSvc *service.FeedbackService
}

// NewFeedbackHandler creates a feedback handler
func NewFeedbackHandler(feedbackSvc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// RequestFeedbackRequest is the body for requesting feedback on a response
type RequestFeedbackRequest struct {
	Content     string `json:"content,omitempty"`
	Sensitivity string `json:"sensitivity,omitempty"`
}

// PreviewRequest is the body for live-preview analysis
type PreviewRequest struct {
	Content     string `json:"content"`
	Sensitivity string `json:"sensitivity,omitempty"`
}

// DismissRequest is the body for dismissing a feedback item
type DismissRequest struct {
	DismissalReason string `json:"dismissalReason,omitempty"`
}

// RateRequest is the body for rating a feedback item
type RateRequest struct {
	Rating string `json:"rating"`
}

// Request handles POST /v1/responses/{responseId}/feedback
func (h *FeedbackHandler) Request(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	var req RequestFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback, err := h.feedbackSvc.RequestFeedback(r.Context(), responseID, req.Content, model.ParseSensitivity(req.Sensitivity))
	if errors.Is(err, service.ErrResponseNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"feedback": feedback})
}

// Preview handles POST /v1/ai/feedback/preview. Nothing is persisted.
func (h *FeedbackHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.feedbackSvc.Preview(r.Context(), req.Content, model.ParseSensitivity(req.Sensitivity))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /v1/feedback/{id}
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	feedback, err := h.feedbackSvc.GetByID(r.Context(), id)
	if errors.Is(err, service.ErrFeedbackNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// Dismiss handles PATCH /v1/feedback/{id}/dismiss
func (h *FeedbackHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req DismissRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback, err := h.feedbackSvc.Dismiss(r.Context(), id, req.DismissalReason)
	if errors.Is(err, service.ErrFeedbackNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// Acknowledge handles POST /v1/feedback/{id}/acknowledge
func (h *FeedbackHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	feedback, err := h.feedbackSvc.Acknowledge(r.Context(), id)
	if errors.Is(err, service.ErrFeedbackNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// Rate handles POST /v1/feedback/{id}/rate
func (h *FeedbackHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !model.ValidHelpfulRating(req.Rating) {
		writeError(w, http.StatusBadRequest, "rating must be HELPFUL or NOT_HELPFUL")
		return
	}

	feedback, err := h.feedbackSvc.Rate(r.Context(), id, model.HelpfulRating(req.Rating))
	if errors.Is(err, service.ErrFeedbackNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// Clarity handles GET /v1/responses/{responseId}/clarity
func (h *FeedbackHandler) Clarity(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	metrics, err := h.feedbackSvc.ClarityForResponse(r.Context(), responseID)
	if errors.Is(err, service.ErrResponseNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}
