package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"reasonbridge/internal/service"
	"reasonbridge/internal/transport/rest/handler"
	"reasonbridge/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	ResponseService     *service.ResponseService
	FeedbackService     *service.FeedbackService
	AnalyticsService    *service.AnalyticsService
	CommonGroundService *service.CommonGroundService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.FeedbackService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)
	cgHandler := handler.NewCommonGroundHandler(c.CommonGroundService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/participants", authHandler.Join).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Participant routes (require participant auth)
	participantRoutes := v1.NewRoute().Subrouter()
	participantRoutes.Use(authMW.RequireParticipant)

	participantRoutes.HandleFunc("/responses", responseHandler.Create).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/responses/{responseId}", responseHandler.Get).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/responses/{responseId}", responseHandler.Revise).Methods("PUT", "OPTIONS")
	participantRoutes.HandleFunc("/responses/{responseId}/feedback", feedbackHandler.Request).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/responses/{responseId}/feedback", responseHandler.ListFeedback).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/responses/{responseId}/clarity", feedbackHandler.Clarity).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/feedback/{id}", feedbackHandler.Get).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/feedback/{id}/dismiss", feedbackHandler.Dismiss).Methods("PATCH", "OPTIONS")
	participantRoutes.HandleFunc("/feedback/{id}/acknowledge", feedbackHandler.Acknowledge).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/feedback/{id}/rate", feedbackHandler.Rate).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/ai/feedback/preview", feedbackHandler.Preview).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/topics/{topicId}/common-ground", cgHandler.Get).Methods("GET", "OPTIONS")

	// Moderator routes (require moderator auth)
	moderatorRoutes := v1.NewRoute().Subrouter()
	moderatorRoutes.Use(authMW.RequireModerator)

	moderatorRoutes.HandleFunc("/analytics/feedback", analyticsHandler.FeedbackRollup).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
