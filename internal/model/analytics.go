package model

import "time"

// FeedbackTypeTotals are raw per-type counters aggregated from feedback rows
type FeedbackTypeTotals struct {
	Type         FeedbackType `json:"type" bson:"_id"`
	Count        int          `json:"count" bson:"count"`
	Acknowledged int          `json:"acknowledged" bson:"acknowledged"`
	Dismissed    int          `json:"dismissed" bson:"dismissed"`
	Revised      int          `json:"revised" bson:"revised"`
	RatedHelpful int          `json:"ratedHelpful" bson:"ratedHelpful"`
}

// FeedbackTypeStats are the derived per-type rates shown to moderators
type FeedbackTypeStats struct {
	Type             FeedbackType `json:"type"`
	Count            int          `json:"count"`
	AcknowledgedRate float64      `json:"acknowledgedRate"`
	DismissedRate    float64      `json:"dismissedRate"`
	RevisedRate      float64      `json:"revisedRate"`
	HelpfulRate      float64      `json:"helpfulRate"`
}

// FeedbackRollup is the cached analytics summary across all feedback
type FeedbackRollup struct {
	TotalFeedback int                 `json:"totalFeedback"`
	ByType        []FeedbackTypeStats `json:"byType"`
	GeneratedAt   time.Time           `json:"generatedAt"`
}
