package model

// PreviewResult is the output of a live-preview analysis run. It has no
// identity and is never persisted.
type PreviewResult struct {
	Feedback       []FeedbackCandidate `json:"feedback"`
	ReadyToPost    bool                `json:"readyToPost"`
	Summary        string              `json:"summary"`
	AnalysisTimeMs int64               `json:"analysisTimeMs"`
}
