package memory

import (
	"testing"

	"calbridge/internal/domain/repository"
	"calbridge/internal/infra/persistence/storetest"
)

func TestSessionRepository(t *testing.T) {
	storetest.RunSessionRepositoryContract(t, func(t *testing.T) repository.SessionRepository {
		return NewSessionRepository()
	})
}
