package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the moderator login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued moderator token
type LoginResponse struct {
	Token       string `json:"token"`
	ModeratorID string `json:"moderatorId"`
}

// JoinRequest registers a discussion participant
type JoinRequest struct {
	DisplayName string `json:"displayName"`
}

// JoinResponse carries the issued participant token
type JoinResponse struct {
	Token         string `json:"token"`
	ParticipantID string `json:"participantId"`
}

// ModeratorClaims are the JWT claims for moderator tokens
type ModeratorClaims struct {
	ModeratorID string `json:"moderatorId"`
	jwt.RegisteredClaims
}

// ParticipantClaims are the JWT claims for participant tokens
type ParticipantClaims struct {
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
	jwt.RegisteredClaims
}
