package model

import (
	"strings"
	"time"
)

// FeedbackType is the closed set of feedback categories the analyzers emit
type FeedbackType string

const (
	FeedbackTypeFallacy      FeedbackType = "FALLACY"
	FeedbackTypeInflammatory FeedbackType = "INFLAMMATORY"
	FeedbackTypeUnsourced    FeedbackType = "UNSOURCED"
	FeedbackTypeBias         FeedbackType = "BIAS"
	FeedbackTypeAffirmation  FeedbackType = "AFFIRMATION"
)

// HelpfulRating is the user's verdict on a feedback item
type HelpfulRating string

const (
	RatingHelpful    HelpfulRating = "HELPFUL"
	RatingNotHelpful HelpfulRating = "NOT_HELPFUL"
)

// ValidHelpfulRating reports whether r is a recognized rating value
func ValidHelpfulRating(r string) bool {
	switch HelpfulRating(r) {
	case RatingHelpful, RatingNotHelpful:
		return true
	}
	return false
}

// Sensitivity controls the confidence floor for displaying feedback
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "LOW"
	SensitivityMedium Sensitivity = "MEDIUM"
	SensitivityHigh   Sensitivity = "HIGH"
)

// ParseSensitivity maps a caller-supplied string to a Sensitivity, defaulting to MEDIUM
func ParseSensitivity(s string) Sensitivity {
	switch Sensitivity(strings.ToUpper(strings.TrimSpace(s))) {
	case SensitivityLow:
		return SensitivityLow
	case SensitivityHigh:
		return SensitivityHigh
	default:
		return SensitivityMedium
	}
}

// EducationalResource is a titled link shown alongside a feedback item
type EducationalResource struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url" bson:"url"`
}

// FeedbackCandidate is an in-memory detection result from one analyzer,
// not yet persisted
type FeedbackCandidate struct {
	Type                 FeedbackType          `json:"type" bson:"type"`
	Subtype              string                `json:"subtype,omitempty" bson:"subtype,omitempty"`
	SuggestionText       string                `json:"suggestionText" bson:"suggestionText"`
	Reasoning            string                `json:"reasoning" bson:"reasoning"`
	ConfidenceScore      float64               `json:"confidenceScore" bson:"confidenceScore"`
	EducationalResources []EducationalResource `json:"educationalResources,omitempty" bson:"educationalResources,omitempty"`
}

// Blocking reports whether this candidate should hold back posting.
// FALLACY always blocks; INFLAMMATORY blocks for attack/hostility subtypes.
// UNSOURCED, BIAS, and AFFIRMATION never block.
func (c *FeedbackCandidate) Blocking() bool {
	switch c.Type {
	case FeedbackTypeFallacy:
		return true
	case FeedbackTypeInflammatory:
		return strings.Contains(c.Subtype, "personal_attack") || strings.Contains(c.Subtype, "hostile_tone")
	}
	return false
}

// Feedback is the persisted feedback entity. ConfidenceScore and
// DisplayedToUser are fixed at creation time; user actions only touch the
// acknowledgment, rating, and dismissal fields.
type Feedback struct {
	ID                   string                `json:"id" bson:"_id,omitempty"`
	ResponseID           string                `json:"responseId" bson:"responseId"`
	Type                 FeedbackType          `json:"type" bson:"type"`
	Subtype              string                `json:"subtype,omitempty" bson:"subtype,omitempty"`
	SuggestionText       string                `json:"suggestionText" bson:"suggestionText"`
	Reasoning            string                `json:"reasoning" bson:"reasoning"`
	ConfidenceScore      float64               `json:"confidenceScore" bson:"confidenceScore"`
	EducationalResources []EducationalResource `json:"educationalResources,omitempty" bson:"educationalResources,omitempty"`
	UserAcknowledged     bool                  `json:"userAcknowledged" bson:"userAcknowledged"`
	UserRevised          bool                  `json:"userRevised" bson:"userRevised"`
	UserHelpfulRating    *HelpfulRating        `json:"userHelpfulRating,omitempty" bson:"userHelpfulRating,omitempty"`
	DisplayedToUser      bool                  `json:"displayedToUser" bson:"displayedToUser"`
	DismissedAt          *time.Time            `json:"dismissedAt,omitempty" bson:"dismissedAt,omitempty"`
	DismissalReason      string                `json:"dismissalReason,omitempty" bson:"dismissalReason,omitempty"`
	CreatedAt            time.Time             `json:"createdAt" bson:"createdAt"`
}

// IsDismissed reports whether the item has been soft-deleted by the user
func (f *Feedback) IsDismissed() bool {
	return f.DismissedAt != nil
}
