package model

import "time"

// AgreementZone is a theme raised by participants on both sides of a topic
type AgreementZone struct {
	Theme        string `json:"theme" bson:"theme"`
	SupportCount int    `json:"supportCount" bson:"supportCount"`
	OpposeCount  int    `json:"opposeCount" bson:"opposeCount"`
}

// DivergencePoint is a theme raised almost exclusively by one side
type DivergencePoint struct {
	Theme  string `json:"theme" bson:"theme"`
	Stance Stance `json:"stance" bson:"stance"`
	Count  int    `json:"count" bson:"count"`
}

// BridgingSuggestion is a cross-perspective prompt derived from the
// agreement and divergence structure of a topic
type BridgingSuggestion struct {
	Text  string `json:"text" bson:"text"`
	Theme string `json:"theme" bson:"theme"`
}

// CommonGroundSummary aggregates participant positions on a topic into
// agreement zones, divergence points, and bridging suggestions
type CommonGroundSummary struct {
	TopicID             string               `json:"topicId" bson:"topicId"`
	TotalResponses      int                  `json:"totalResponses" bson:"totalResponses"`
	SupportCount        int                  `json:"supportCount" bson:"supportCount"`
	OpposeCount         int                  `json:"opposeCount" bson:"opposeCount"`
	NeutralCount        int                  `json:"neutralCount" bson:"neutralCount"`
	AgreementZones      []AgreementZone      `json:"agreementZones" bson:"agreementZones"`
	DivergencePoints    []DivergencePoint    `json:"divergencePoints" bson:"divergencePoints"`
	BridgingSuggestions []BridgingSuggestion `json:"bridgingSuggestions" bson:"bridgingSuggestions"`
	GeneratedAt         time.Time            `json:"generatedAt" bson:"generatedAt"`
}
