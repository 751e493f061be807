package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"reasonbridge/internal/config"
	"reasonbridge/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles moderator and participant authentication
type AuthService struct {
	modUsername string
	modPassword string
	jwtSecret   []byte
}

// NewAuthService creates an auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		modUsername: cfg.ModUsername,
		modPassword: cfg.ModPassword,
		jwtSecret:   []byte(cfg.JWTSecret),
	}
}

// Login validates moderator credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.modUsername || password != s.modPassword {
		return nil, ErrInvalidCredentials
	}

	moderatorID := "mod_" + uuid.New().String()[:8]

	claims := &model.ModeratorClaims{
		ModeratorID: moderatorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		ModeratorID: moderatorID,
	}, nil
}

// Join registers a participant and returns a scoped token
func (s *AuthService) Join(displayName string) (*model.JoinResponse, error) {
	participantID := "user_" + uuid.New().String()[:8]

	claims := &model.ParticipantClaims{
		ParticipantID: participantID,
		DisplayName:   displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.JoinResponse{
		Token:         tokenString,
		ParticipantID: participantID,
	}, nil
}

// ValidateModeratorToken validates a moderator JWT and returns claims
func (s *AuthService) ValidateModeratorToken(tokenString string) (*model.ModeratorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ModeratorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ModeratorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	// both token kinds are signed with the same secret; the role-scoped ID is
	// what distinguishes them
	if claims.ModeratorID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateParticipantToken validates a participant JWT and returns claims
func (s *AuthService) ValidateParticipantToken(tokenString string) (*model.ParticipantClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ParticipantClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ParticipantClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ParticipantID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
