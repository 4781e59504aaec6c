// Package memory keeps sessions in process memory. Records are lost on restart.
package memory

import (
	"context"
	"sync"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.SessionRecord
}

// NewSessionRepository returns an empty in-memory store.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]entity.SessionRecord),
	}
}

func (r *sessionRepository) Put(_ context.Context, record *entity.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[record.UserID] = *record

	return nil
}

func (r *sessionRepository) Get(_ context.Context, userID string) (*entity.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.sessions[userID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &record, nil
}

func (r *sessionRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)

	return nil
}

func (r *sessionRepository) FindByEmail(_ context.Context, userEmail string) ([]*entity.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*entity.SessionRecord
	for _, record := range r.sessions {
		if record.UserEmail == userEmail {
			copied := record
			records = append(records, &copied)
		}
	}

	return records, nil
}

func (r *sessionRepository) Close() error {
	return nil
}
