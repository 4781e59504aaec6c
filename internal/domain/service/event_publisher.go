package service

import (
	"context"
	"time"
)

// Session lifecycle event types.
const (
	EventSessionStored         = "session.stored"
	EventSessionRefreshed      = "session.refreshed"
	EventSessionReauthRequired = "session.reauth_required"
	EventSessionDeleted        = "session.deleted"
)

// SessionEvent describes a change to a stored session. It never carries tokens.
type SessionEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing session events to a message queue
type EventPublisher interface {
	// PublishSessionEvent publishes a session event for downstream consumers
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
