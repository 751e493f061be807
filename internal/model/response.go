package model

import "time"

// Stance is a participant's declared position on a topic
type Stance string

const (
	StanceSupport Stance = "support"
	StanceOppose  Stance = "oppose"
	StanceNeutral Stance = "neutral"
)

// ValidStance reports whether s is a recognized stance value
func ValidStance(s string) bool {
	switch Stance(s) {
	case StanceSupport, StanceOppose, StanceNeutral:
		return true
	}
	return false
}

// Response is a participant's contribution to a topic discussion
type Response struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	TopicID       string    `json:"topicId" bson:"topicId"`
	AuthorID      string    `json:"authorId" bson:"authorId"`
	Stance        Stance    `json:"stance" bson:"stance"`
	Content       string    `json:"content" bson:"content"`
	RevisionCount int       `json:"revisionCount" bson:"revisionCount"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
