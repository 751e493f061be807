package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"reasonbridge/internal/service"
)

// CommonGroundHandler handles common-ground endpoints
type CommonGroundHandler struct {
	cgSvc *service.CommonGroundService
}

// NewCommonGroundHandler creates a common-ground handler
func NewCommonGroundHandler(cgSvc *service.CommonGroundService) *CommonGroundHandler {
	return &CommonGroundHandler{cgSvc: cgSvc}
}

// Get handles GET /v1/topics/{topicId}/common-ground
func (h *CommonGroundHandler) Get(w http.ResponseWriter, r *http.Request) {
	topicID := mux.Vars(r)["topicId"]

	summary, err := h.cgSvc.Summarize(r.Context(), topicID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
