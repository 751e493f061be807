package service

import (
	"context"
	"log"
	"time"

	"reasonbridge/internal/cache"
	"reasonbridge/internal/model"
	"reasonbridge/internal/repository"
)

// AnalyticsService groups persisted feedback rows into the per-type rollup
// moderators see. The core pipeline only emits rows; all aggregation lives
// here.
type AnalyticsService struct {
	feedbackRepo   repository.FeedbackRepo
	analyticsCache cache.AnalyticsCache
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(feedbackRepo repository.FeedbackRepo, analyticsCache cache.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{
		feedbackRepo:   feedbackRepo,
		analyticsCache: analyticsCache,
	}
}

// FeedbackRollup returns the cached rollup, recomputing it from Mongo on a
// miss. Cache failures degrade to a fresh aggregation.
func (s *AnalyticsService) FeedbackRollup(ctx context.Context) (*model.FeedbackRollup, error) {
	if s.analyticsCache != nil {
		cached, err := s.analyticsCache.GetRollup(ctx)
		if err != nil {
			log.Printf("analytics cache get failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	totals, err := s.feedbackRepo.GroupByType(ctx)
	if err != nil {
		return nil, err
	}

	rollup := buildRollup(totals)

	if s.analyticsCache != nil {
		if err := s.analyticsCache.SetRollup(ctx, rollup); err != nil {
			log.Printf("analytics cache set failed: %v", err)
		}
	}

	return rollup, nil
}

func buildRollup(totals []model.FeedbackTypeTotals) *model.FeedbackRollup {
	rollup := &model.FeedbackRollup{
		ByType:      make([]model.FeedbackTypeStats, 0, len(totals)),
		GeneratedAt: time.Now(),
	}

	for _, t := range totals {
		rollup.TotalFeedback += t.Count
		rollup.ByType = append(rollup.ByType, model.FeedbackTypeStats{
			Type:             t.Type,
			Count:            t.Count,
			AcknowledgedRate: rate(t.Acknowledged, t.Count),
			DismissedRate:    rate(t.Dismissed, t.Count),
			RevisedRate:      rate(t.Revised, t.Count),
			HelpfulRate:      rate(t.RatedHelpful, t.Count),
		})
	}

	return rollup
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
