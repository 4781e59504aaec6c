package badger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"calbridge/internal/domain/repository"
	"calbridge/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()

	db, err := Open("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	repo := NewSessionRepository(db)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestSessionRepository(t *testing.T) {
	storetest.RunSessionRepositoryContract(t, newTestRepo)
}

func TestSessionRepository_EmailPrefixIsExact(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, storetest.Record("key-1", "a@example.com")))
	require.NoError(t, repo.Put(ctx, storetest.Record("key-2", "a@example.com.evil")))

	records, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "key-1", records[0].UserID)
}

func TestSessionRepository_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	db, err := Open(dir, logger)
	require.NoError(t, err)
	repo := NewSessionRepository(db)
	require.NoError(t, repo.Put(ctx, storetest.Record("key-1", "a@example.com")))
	require.NoError(t, repo.Close())

	db, err = Open(dir, logger)
	require.NoError(t, err)
	reopened := NewSessionRepository(db)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.UserEmail)
}
