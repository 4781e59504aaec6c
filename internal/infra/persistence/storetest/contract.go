// Package storetest holds the behaviour every SessionRepository driver must share.
package storetest

import (
	"context"
	"sort"
	"testing"
	"time"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
	"calbridge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Record builds a stored session with placeholder ciphertext.
func Record(userID, email string) *entity.SessionRecord {
	return &entity.SessionRecord{
		UserID:             userID,
		UserEmail:          email,
		AccessTokenCipher:  "cipher-at-" + userID,
		RefreshTokenCipher: "cipher-rt-" + userID,
		CreatedAt:          time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		ExpiresIn:          1800,
	}
}

// RunSessionRepositoryContract exercises repo through the SessionRepository port.
// newRepo must return an empty store.
func RunSessionRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.SessionRepository) {
	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		record, err := repo.Get(context.Background(), "nobody")

		assert.Nil(t, record)
		assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	})

	t.Run("put then get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		want := Record("key-1", "a@example.com")

		require.NoError(t, repo.Put(ctx, want))

		got, err := repo.Get(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, want.UserEmail, got.UserEmail)
		assert.Equal(t, want.AccessTokenCipher, got.AccessTokenCipher)
		assert.Equal(t, want.RefreshTokenCipher, got.RefreshTokenCipher)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, want.ExpiresIn, got.ExpiresIn)
	})

	t.Run("put overwrites", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Put(ctx, Record("key-1", "a@example.com")))
		updated := Record("key-1", "b@example.com")
		updated.AccessTokenCipher = "cipher-at-new"
		require.NoError(t, repo.Put(ctx, updated))

		got, err := repo.Get(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, "cipher-at-new", got.AccessTokenCipher)
		assert.Equal(t, "b@example.com", got.UserEmail)

		stale, err := repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		assert.Empty(t, stale)
	})

	t.Run("find by email spans user ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Put(ctx, Record("key-1", "a@example.com")))
		require.NoError(t, repo.Put(ctx, Record("key-2", "a@example.com")))
		require.NoError(t, repo.Put(ctx, Record("key-3", "c@example.com")))

		records, err := repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)

		ids := make([]string, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.UserID)
		}
		sort.Strings(ids)
		assert.Equal(t, []string{"key-1", "key-2"}, ids)
	})

	t.Run("delete removes record and index", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Put(ctx, Record("key-1", "a@example.com")))
		require.NoError(t, repo.Delete(ctx, "key-1"))

		_, err := repo.Get(ctx, "key-1")
		assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

		records, err := repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("delete missing is not an error", func(t *testing.T) {
		repo := newRepo(t)

		assert.NoError(t, repo.Delete(context.Background(), "nobody"))
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Put(ctx, Record("key-1", "a@example.com")))

		got, err := repo.Get(ctx, "key-1")
		require.NoError(t, err)
		got.AccessTokenCipher = "mutated"

		again, err := repo.Get(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, "cipher-at-key-1", again.AccessTokenCipher)
	})
}
