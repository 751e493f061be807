package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"reasonbridge/internal/model"
	"reasonbridge/internal/service"
	"reasonbridge/internal/transport/rest/middleware"
)

// ResponseHandler handles response endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
	feedbackSvc *service.FeedbackService
}

// NewResponseHandler creates a response handler
func NewResponseHandler(responseSvc *service.ResponseService, feedbackSvc *service.FeedbackService) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		feedbackSvc: feedbackSvc,
	}
}

// CreateResponseRequest is the body for posting a response
type CreateResponseRequest struct {
	TopicID string `json:"topicId"`
	Stance  string `json:"stance"`
	Content string `json:"content"`
}

// ReviseResponseRequest is the body for revising a response
type ReviseResponseRequest struct {
	Content string `json:"content"`
}

// Create handles POST /v1/responses
func (h *ResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	participantID := middleware.GetParticipantID(r.Context())
	if participantID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response := &model.Response{
		TopicID:  req.TopicID,
		AuthorID: participantID,
		Stance:   model.Stance(req.Stance),
		Content:  req.Content,
	}

	id, err := h.responseSvc.Create(r.Context(), response)
	if errors.Is(err, service.ErrEmptyContent) || errors.Is(err, service.ErrInvalidStance) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"responseId": id})
}

// Get handles GET /v1/responses/{responseId}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	response, err := h.responseSvc.GetByID(r.Context(), responseID)
	if errors.Is(err, service.ErrResponseNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Revise handles PUT /v1/responses/{responseId}
func (h *ResponseHandler) Revise(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	var req ReviseResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.responseSvc.Revise(r.Context(), responseID, req.Content)
	if errors.Is(err, service.ErrResponseNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, service.ErrEmptyContent) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.feedbackSvc.MarkRevised(r.Context(), responseID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ListFeedback handles GET /v1/responses/{responseId}/feedback
func (h *ResponseHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	feedback, err := h.feedbackSvc.GetByResponseID(r.Context(), responseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"feedback": feedback})
}
