// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"calbridge/internal/domain/entity"
)

// StoreSessionInput carries plaintext credentials to persist for one user id.
type StoreSessionInput struct {
	UserID       string
	UserEmail    string // Optional; when set, other user ids with this email are removed.
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	ExpiresIn    int // Seconds.
}

// SessionManager owns the session lifecycle on top of the encrypted store.
// Persistence is best-effort: failures are logged, never returned.
type SessionManager interface {
	StoreSession(ctx context.Context, input StoreSessionInput)
	// GetSession returns nil when the session is absent or unreadable.
	GetSession(ctx context.Context, userID string) *entity.Session
	DeleteSession(ctx context.Context, userID string)
	IsValid(session *entity.Session) bool
	IsRefreshable(session *entity.Session) bool
}
