package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"reasonbridge/internal/model"
)

// DisplayThreshold is the single authoritative confidence floor for showing
// feedback to users. Persisted DisplayedToUser flags, the clarity-metrics
// input gate, and MEDIUM-sensitivity previews all reference this value.
const DisplayThreshold = 0.80

const (
	thresholdLow  = 0.70
	thresholdHigh = 0.90
)

// maxFeedbackItems caps how many candidates a single preview returns
const maxFeedbackItems = 3

// substantiveLength is the minimum trimmed rune count for a response to earn
// an affirmation instead of the empty no-issues state
const substantiveLength = 40

// affirmationConfidence sits above the display floor so affirmations survive
// persistence gating
const affirmationConfidence = 0.85

// Threshold returns the confidence floor for a sensitivity level.
// Unrecognized values fall back to MEDIUM.
func Threshold(s model.Sensitivity) float64 {
	switch s {
	case model.SensitivityLow:
		return thresholdLow
	case model.SensitivityHigh:
		return thresholdHigh
	default:
		return DisplayThreshold
	}
}

// Analyzer runs the rule-based detectors and aggregates their candidates.
// It holds no state; a single value can serve all requests concurrently.
type Analyzer struct{}

// NewAnalyzer creates an analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Preview analyzes response text at the given sensitivity and returns the
// ordered feedback set plus a readiness verdict. It is a pure function of its
// inputs apart from the recorded wall-clock duration.
func (a *Analyzer) Preview(text string, sensitivity model.Sensitivity) *model.PreviewResult {
	start := time.Now()

	var candidates []model.FeedbackCandidate
	for _, detect := range []func(string) *model.FeedbackCandidate{AnalyzeFallacies, AnalyzeTone, AnalyzeClarity} {
		if c := detect(text); c != nil {
			candidates = append(candidates, *c)
		}
	}

	threshold := Threshold(sensitivity)
	kept := candidates[:0]
	for _, c := range candidates {
		if c.ConfidenceScore >= threshold {
			kept = append(kept, c)
		}
	}

	// Blocking-severity items surface first, then by confidence. The sort is
	// stable so detector order breaks exact ties deterministically.
	sort.SliceStable(kept, func(i, j int) bool {
		bi, bj := kept[i].Blocking(), kept[j].Blocking()
		if bi != bj {
			return bi
		}
		return kept[i].ConfidenceScore > kept[j].ConfidenceScore
	})
	if len(kept) > maxFeedbackItems {
		kept = kept[:maxFeedbackItems]
	}

	elapsed := time.Since(start).Milliseconds()

	if len(kept) == 0 {
		if substantive(text) {
			return &model.PreviewResult{
				Feedback:       []model.FeedbackCandidate{affirmationCandidate()},
				ReadyToPost:    true,
				Summary:        "Your response looks constructive!",
				AnalysisTimeMs: elapsed,
			}
		}
		return &model.PreviewResult{
			Feedback:       []model.FeedbackCandidate{},
			ReadyToPost:    true,
			Summary:        "No issues detected",
			AnalysisTimeMs: elapsed,
		}
	}

	ready := true
	for i := range kept {
		if kept[i].Blocking() {
			ready = false
			break
		}
	}

	return &model.PreviewResult{
		Feedback:       kept,
		ReadyToPost:    ready,
		Summary:        fmt.Sprintf("Found %d areas for improvement", len(kept)),
		AnalysisTimeMs: elapsed,
	}
}

func substantive(text string) bool {
	return len([]rune(strings.TrimSpace(text))) >= substantiveLength
}

func affirmationCandidate() model.FeedbackCandidate {
	return model.FeedbackCandidate{
		Type:            model.FeedbackTypeAffirmation,
		SuggestionText:  "Your response is constructive and well-reasoned. Nice work keeping the discussion healthy!",
		Reasoning:       "No fallacies, inflammatory language, or clarity issues were detected.",
		ConfidenceScore: affirmationConfidence,
	}
}
