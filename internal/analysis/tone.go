package analysis

import (
	"fmt"

	"reasonbridge/internal/model"
)

// Tone confidence is higher-stakes than fallacy detection and uses a larger
// per-match step with a higher ceiling. A single match lands at exactly 0.75.
const (
	toneBaseConfidence = 0.65
	toneStep           = 0.10
	toneCap            = 0.95
)

// subtype when inflammatory and hostile signals co-occur
const subtypeCombined = "personal_attack_with_hostile_tone"

const combinedSuggestion = "Removing the personal attacks and softening the hostile language would help others engage with your underlying point."

// AnalyzeTone scans text against the inflammatory and hostile-tone pattern
// groups. When both groups fire the candidate escalates to the combined
// subtype. Clean, passionate-but-respectful, and interrogative text returns
// nil; topic intensity alone is not a signal.
func AnalyzeTone(text string) *model.FeedbackCandidate {
	norm := normalize(text)
	if norm == "" {
		return nil
	}

	groups := []patternGroup{inflammatoryGroup, hostileGroup}
	hits, total, excerpts := scan(norm, groups)
	if total == 0 {
		return nil
	}

	inflammatory, hostile := 0, 0
	for _, h := range hits {
		switch h.group.Subtype {
		case inflammatoryGroup.Subtype:
			inflammatory = h.count
		case hostileGroup.Subtype:
			hostile = h.count
		}
	}

	subtype := inflammatoryGroup.Subtype
	suggestion := inflammatoryGroup.Suggestion
	switch {
	case inflammatory > 0 && hostile > 0:
		subtype = subtypeCombined
		suggestion = combinedSuggestion
	case hostile > 0:
		subtype = hostileGroup.Subtype
		suggestion = hostileGroup.Suggestion
	}

	confidence := clampScore(toneBaseConfidence+toneStep*float64(total), toneBaseConfidence, toneCap)

	reasoning := fmt.Sprintf("This response contains inflammatory language (%d signal(s) detected)", total)
	if q := quoteExcerpts(excerpts); q != "" {
		reasoning += ", such as " + q
	}
	reasoning += "."

	return &model.FeedbackCandidate{
		Type:                 model.FeedbackTypeInflammatory,
		Subtype:              subtype,
		SuggestionText:       suggestion,
		Reasoning:            reasoning,
		ConfidenceScore:      confidence,
		EducationalResources: resourceList(toneResources),
	}
}
