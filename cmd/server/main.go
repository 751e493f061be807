package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reasonbridge/internal/analysis"
	"reasonbridge/internal/cache"
	"reasonbridge/internal/config"
	"reasonbridge/internal/repository"
	"reasonbridge/internal/service"
	"reasonbridge/internal/transport/rest"
)

// @title ReasonBridge Feedback API
// @version 1.0
// @description Rule-based discussion feedback analysis service
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	responseRepo := repository.NewResponseRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)

	// Initialize caches
	previewCache := cache.NewPreviewCache(rdb)
	analyticsCache := cache.NewAnalyticsCache(rdb)
	cgCache := cache.NewCommonGroundCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	responseSvc := service.NewResponseService(responseRepo)
	analyzer := analysis.NewAnalyzer()
	feedbackSvc := service.NewFeedbackService(feedbackRepo, responseRepo, previewCache, analyzer)
	analyticsSvc := service.NewAnalyticsService(feedbackRepo, analyticsCache)
	cgSvc := service.NewCommonGroundService(responseRepo, cgCache)

	// Create router with container
	container := &rest.Container{
		AuthService:         authSvc,
		ResponseService:     responseSvc,
		FeedbackService:     feedbackSvc,
		AnalyticsService:    analyticsSvc,
		CommonGroundService: cgSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/participants")
		log.Println("  POST /v1/responses")
		log.Println("  POST /v1/responses/{responseId}/feedback")
		log.Println("  POST /v1/ai/feedback/preview")
		log.Println("  GET  /v1/responses/{responseId}/clarity")
		log.Println("  GET  /v1/topics/{topicId}/common-ground")
		log.Println("  GET  /v1/analytics/feedback")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
