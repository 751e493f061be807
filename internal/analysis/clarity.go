package analysis

import (
	"fmt"

	"reasonbridge/internal/model"
)

const (
	clarityBaseConfidence = 0.70
	clarityStep           = 0.05
	clarityCap            = 0.90

	// per-issue penalties applied to the sub-scores
	sourcingPenalty   = 0.2
	neutralityPenalty = 0.15

	// specificityBaseline stands in until a dedicated detector provides a
	// real signal; the provider hook below accepts one without changing the
	// metrics contract
	specificityBaseline = 0.85
)

// AnalyzeClarity scans text for unsourced-claim and loaded-language
// indicators and collapses any hits into a single candidate. The group with
// more matches wins; unsourced claims win ties.
func AnalyzeClarity(text string) *model.FeedbackCandidate {
	norm := normalize(text)
	if norm == "" {
		return nil
	}

	groups := []patternGroup{unsourcedGroup, biasGroup}
	hits, total, excerpts := scan(norm, groups)
	if total == 0 {
		return nil
	}

	dominant := dominantGroup(hits)
	feedbackType := model.FeedbackTypeUnsourced
	if dominant.Subtype == biasGroup.Subtype {
		feedbackType = model.FeedbackTypeBias
	}

	confidence := clampScore(clarityBaseConfidence+clarityStep*float64(total-1), clarityBaseConfidence, clarityCap)

	reasoning := fmt.Sprintf("This response includes %s phrasing (%d instance(s) detected)", dominant.Label, total)
	if q := quoteExcerpts(excerpts); q != "" {
		reasoning += ", for example " + q
	}
	reasoning += "."

	return &model.FeedbackCandidate{
		Type:                 feedbackType,
		Subtype:              dominant.Subtype,
		SuggestionText:       dominant.Suggestion,
		Reasoning:            reasoning,
		ConfidenceScore:      confidence,
		EducationalResources: resourceList(clarityResources[dominant.Subtype]),
	}
}

// ClarityOption customizes a ComputeClarityMetrics call
type ClarityOption func(*clarityOptions)

type clarityOptions struct {
	specificity func() float64
}

// WithSpecificityProvider overrides the baseline specificity score. A future
// vague-language detector plugs in here.
func WithSpecificityProvider(fn func() float64) ClarityOption {
	return func(o *clarityOptions) {
		o.specificity = fn
	}
}

// WithSpecificityFromText wires the vague-language pattern set as the
// specificity provider for the given text
func WithSpecificityFromText(text string) ClarityOption {
	return WithSpecificityProvider(func() float64 {
		return SpecificityFromText(text)
	})
}

// SpecificityFromText derives a specificity score from vague-language match
// density. Text with no vague phrasing scores the baseline.
func SpecificityFromText(text string) float64 {
	norm := normalize(text)
	if norm == "" {
		return specificityBaseline
	}
	vague := 0
	for _, p := range vaguePatterns {
		vague += len(p.FindAllString(norm, -1))
	}
	return clampScore(specificityBaseline-0.05*float64(vague), 0.3, specificityBaseline)
}

// ComputeClarityMetrics derives sourcing/neutrality/specificity sub-scores
// from the current feedback set for a response. Only UNSOURCED and BIAS items
// at or above the display threshold that are actually displayed contribute;
// everything else is excluded outright. An empty filtered set yields the
// canonical no-issues state rather than an error.
func ComputeClarityMetrics(items []*model.Feedback, opts ...ClarityOption) *model.ClarityMetrics {
	options := clarityOptions{
		specificity: func() float64 { return specificityBaseline },
	}
	for _, opt := range opts {
		opt(&options)
	}

	unsourced, bias := 0, 0
	for _, f := range items {
		if f.ConfidenceScore < DisplayThreshold || !f.DisplayedToUser {
			continue
		}
		switch f.Type {
		case model.FeedbackTypeUnsourced:
			unsourced++
		case model.FeedbackTypeBias:
			bias++
		}
	}

	sourcing := clampScore(1.0-sourcingPenalty*float64(unsourced), 0, 1)
	neutrality := clampScore(1.0-neutralityPenalty*float64(bias), 0, 1)
	specificity := clampScore(options.specificity(), 0, 1)
	overall := (sourcing + neutrality + specificity) / 3

	return &model.ClarityMetrics{
		SourcingScore:       sourcing,
		NeutralityScore:     neutrality,
		SpecificityScore:    specificity,
		OverallClarityScore: overall,
		IssuesDetected:      unsourced + bias,
		Label:               model.ClarityLabel(overall),
	}
}
