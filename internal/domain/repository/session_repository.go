// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"calbridge/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no record exists for a user id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the keyed session store. Records hold encrypted tokens only.
type SessionRepository interface {
	// Put inserts or fully overwrites the record for record.UserID.
	Put(ctx context.Context, record *entity.SessionRecord) error

	// Get returns the record for userID, or ErrSessionNotFound.
	Get(ctx context.Context, userID string) (*entity.SessionRecord, error)

	// Delete removes the record for userID. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID string) error

	// FindByEmail returns every record sharing userEmail, across user ids.
	FindByEmail(ctx context.Context, userEmail string) ([]*entity.SessionRecord, error)

	// Close releases the underlying storage handle.
	Close() error
}
