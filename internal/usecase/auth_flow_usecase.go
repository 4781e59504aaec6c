package usecase

import (
	"context"

	"calbridge/internal/domain/entity"
)

// AuthFlowUsecase runs the OAuth consent round trip and keeps sessions fresh.
type AuthFlowUsecase interface {
	// BuildAuthorizationURL returns the consent URL. A non-empty userID is bound into the state parameter.
	BuildAuthorizationURL(ctx context.Context, userID string) string

	// ExchangeCodeForSession stores the credentials granted by code. An empty userID
	// falls back to the verified email.
	ExchangeCodeForSession(ctx context.Context, code, userID string) (*entity.Session, error)

	// EnsureFreshSession resolves a usable session, refreshing it when stale.
	EnsureFreshSession(ctx context.Context, userID string) entity.FreshSession
}
