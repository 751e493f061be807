package model

// ClarityMetrics is the derived sourcing/neutrality/specificity quality
// measure of a response, recomputed from its current feedback set
type ClarityMetrics struct {
	SourcingScore       float64 `json:"sourcingScore" bson:"sourcingScore"`             // 0-1
	NeutralityScore     float64 `json:"neutralityScore" bson:"neutralityScore"`         // 0-1
	SpecificityScore    float64 `json:"specificityScore" bson:"specificityScore"`       // 0-1
	OverallClarityScore float64 `json:"overallClarityScore" bson:"overallClarityScore"` // mean of the three
	IssuesDetected      int     `json:"issuesDetected" bson:"issuesDetected"`
	Label               string  `json:"label" bson:"label"`
}

// ClarityLabel maps an overall clarity score to its display band.
// Boundaries are inclusive on the lower bound of each band; the same mapping
// is used server-side and by display components.
func ClarityLabel(score float64) string {
	switch {
	case score >= 0.90:
		return "Excellent"
	case score >= 0.80:
		return "Good"
	case score >= 0.70:
		return "Fair"
	case score >= 0.60:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
