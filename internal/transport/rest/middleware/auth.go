package middleware

import (
	"context"
	"net/http"
	"strings"

	"reasonbridge/internal/service"
)

type contextKey string

const (
	ModeratorIDKey   contextKey = "moderatorId"
	ParticipantIDKey contextKey = "participantId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates an auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireModerator validates a moderator JWT from the Authorization header
func (m *AuthMiddleware) RequireModerator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateModeratorToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ModeratorIDKey, claims.ModeratorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireParticipant validates a participant JWT from the Authorization header
func (m *AuthMiddleware) RequireParticipant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateParticipantToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ParticipantIDKey, claims.ParticipantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetModeratorID extracts the moderator ID from context
func GetModeratorID(ctx context.Context) string {
	if v := ctx.Value(ModeratorIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetParticipantID extracts the participant ID from context
func GetParticipantID(ctx context.Context) string {
	if v := ctx.Value(ParticipantIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
