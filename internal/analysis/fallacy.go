package analysis

import (
	"fmt"

	"reasonbridge/internal/model"
)

// Fallacy confidence starts at the base for a single match, rises per
// additional independent match, and never exceeds the fallacy ceiling.
// These constants are contractual; display gating elsewhere depends on the
// exact values.
const (
	fallacyBaseConfidence = 0.70
	fallacyStep           = 0.05
	fallacyCap            = 0.92
)

// AnalyzeFallacies scans text against the seven fallacy pattern groups and
// collapses any hits into a single candidate for the dominant subtype.
// Empty or whitespace-only input, and text with no matches, return nil.
func AnalyzeFallacies(text string) *model.FeedbackCandidate {
	norm := normalize(text)
	if norm == "" {
		return nil
	}

	hits, total, excerpts := scan(norm, fallacyGroups)
	if total == 0 {
		return nil
	}

	dominant := dominantGroup(hits)
	confidence := clampScore(fallacyBaseConfidence+fallacyStep*float64(total-1), fallacyBaseConfidence, fallacyCap)

	reasoning := fmt.Sprintf("This response appears to contain a %s pattern (%d instance(s) detected)", dominant.Label, total)
	if q := quoteExcerpts(excerpts); q != "" {
		reasoning += ", for example " + q
	}
	reasoning += "."

	resources, ok := fallacyResources[dominant.Subtype]
	if !ok {
		resources = genericResources
	}

	return &model.FeedbackCandidate{
		Type:                 model.FeedbackTypeFallacy,
		Subtype:              dominant.Subtype,
		SuggestionText:       dominant.Suggestion,
		Reasoning:            reasoning,
		ConfidenceScore:      confidence,
		EducationalResources: resourceList(resources),
	}
}
