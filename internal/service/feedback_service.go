package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"reasonbridge/internal/analysis"
	"reasonbridge/internal/cache"
	"reasonbridge/internal/model"
	"reasonbridge/internal/repository"
)

var (
	ErrResponseNotFound = errors.New("response not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrInvalidRating    = errors.New("invalid helpful rating")
)

// FeedbackService orchestrates the analysis pipeline and the lifecycle of
// persisted feedback. The detectors stay pure; all persistence happens here.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepo
	responseRepo repository.ResponseRepo
	previews     cache.PreviewCache
	analyzer     *analysis.Analyzer
}

// NewFeedbackService creates a feedback service
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepo,
	responseRepo repository.ResponseRepo,
	previews cache.PreviewCache,
	analyzer *analysis.Analyzer,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		responseRepo: responseRepo,
		previews:     previews,
		analyzer:     analyzer,
	}
}

// RequestFeedback runs the pipeline over a response and persists each
// returned candidate as a feedback row. Content defaults to the stored
// response text when empty (the caller may pass an in-progress revision).
// DisplayedToUser is computed once here from the global display threshold
// and never recomputed when sensitivity preferences change later.
func (s *FeedbackService) RequestFeedback(ctx context.Context, responseID, content string, sensitivity model.Sensitivity) ([]*model.Feedback, error) {
	response, err := s.responseRepo.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}

	if content == "" {
		content = response.Content
	}

	result := s.analyzer.Preview(content, sensitivity)

	created := make([]*model.Feedback, 0, len(result.Feedback))
	for _, c := range result.Feedback {
		feedback := &model.Feedback{
			ResponseID:           responseID,
			Type:                 c.Type,
			Subtype:              c.Subtype,
			SuggestionText:       c.SuggestionText,
			Reasoning:            c.Reasoning,
			ConfidenceScore:      c.ConfidenceScore,
			EducationalResources: c.EducationalResources,
			DisplayedToUser:      c.ConfidenceScore >= analysis.DisplayThreshold,
			CreatedAt:            time.Now(),
		}
		if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
			return nil, err
		}
		created = append(created, feedback)
	}

	return created, nil
}

// Preview analyzes content without persisting anything. Results are memoized
// briefly in Redis; cache failures degrade to a fresh analysis.
func (s *FeedbackService) Preview(ctx context.Context, content string, sensitivity model.Sensitivity) (*model.PreviewResult, error) {
	hash := contentHash(content)

	if s.previews != nil {
		cached, err := s.previews.Get(ctx, hash, sensitivity)
		if err != nil {
			log.Printf("preview cache get failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	result := s.analyzer.Preview(content, sensitivity)

	if s.previews != nil {
		if err := s.previews.Set(ctx, hash, sensitivity, result); err != nil {
			log.Printf("preview cache set failed: %v", err)
		}
	}

	return result, nil
}

// GetByID retrieves a single feedback item
func (s *FeedbackService) GetByID(ctx context.Context, id string) (*model.Feedback, error) {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}
	return feedback, nil
}

// GetByResponseID retrieves all feedback for a response
func (s *FeedbackService) GetByResponseID(ctx context.Context, responseID string) ([]*model.Feedback, error) {
	return s.feedbackRepo.GetByResponseID(ctx, responseID)
}

// Dismiss soft-deletes a feedback item for display purposes. The row is
// retained for analytics.
func (s *FeedbackService) Dismiss(ctx context.Context, id, reason string) (*model.Feedback, error) {
	feedback, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	feedback.DismissedAt = &now
	feedback.DismissalReason = reason

	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Acknowledge marks a feedback item as seen. Repeated calls are no-ops.
func (s *FeedbackService) Acknowledge(ctx context.Context, id string) (*model.Feedback, error) {
	feedback, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if feedback.UserAcknowledged {
		return feedback, nil
	}

	feedback.UserAcknowledged = true
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// MarkRevised flags a response's displayed, undismissed feedback as having
// led to a revision. Called when the author edits their response after seeing
// feedback; already-flagged items are skipped.
func (s *FeedbackService) MarkRevised(ctx context.Context, responseID string) error {
	items, err := s.feedbackRepo.GetByResponseID(ctx, responseID)
	if err != nil {
		return err
	}

	for _, f := range items {
		if !f.DisplayedToUser || f.UserRevised || f.IsDismissed() {
			continue
		}
		f.UserRevised = true
		if err := s.feedbackRepo.Update(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Rate records a helpfulness rating. A later rating overwrites an earlier one.
func (s *FeedbackService) Rate(ctx context.Context, id string, rating model.HelpfulRating) (*model.Feedback, error) {
	if !model.ValidHelpfulRating(string(rating)) {
		return nil, ErrInvalidRating
	}

	feedback, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback.UserHelpfulRating = &rating
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ClarityForResponse recomputes clarity metrics from the response's current
// feedback set
func (s *FeedbackService) ClarityForResponse(ctx context.Context, responseID string) (*model.ClarityMetrics, error) {
	response, err := s.responseRepo.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}

	items, err := s.feedbackRepo.GetByResponseID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	return analysis.ComputeClarityMetrics(items, analysis.WithSpecificityFromText(response.Content)), nil
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
