package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
	"calbridge/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sessionColumns = []string{
	"user_id", "user_email", "access_token_cipher", "refresh_token_cipher", "created_at", "expires_in", "updated_at",
}

func newMockedRepository(t *testing.T) (repository.SessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return NewSessionRepository(db, ""), mock
}

func TestSessionRepository_PutOverwritesEveryColumn(t *testing.T) {
	repo, mock := newMockedRepository(t)
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "calendar_sessions" `+
		`("user_id","user_email","access_token_cipher","refresh_token_cipher","created_at","expires_in","updated_at") `+
		`VALUES ($1,$2,$3,$4,$5,$6,$7) `+
		`ON CONFLICT ("user_id") DO UPDATE SET `+
		`"user_email"="excluded"."user_email",`+
		`"access_token_cipher"="excluded"."access_token_cipher",`+
		`"refresh_token_cipher"="excluded"."refresh_token_cipher",`+
		`"created_at"="excluded"."created_at",`+
		`"expires_in"="excluded"."expires_in",`+
		`"updated_at"="excluded"."updated_at"`)).
		WithArgs("my-key", "a@example.com", "enc-access", "enc-refresh", issuedAt, 1800, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), &entity.SessionRecord{
		UserID:             "my-key",
		UserEmail:          "a@example.com",
		AccessTokenCipher:  "enc-access",
		RefreshTokenCipher: "enc-refresh",
		CreatedAt:          issuedAt,
		ExpiresIn:          1800,
	})
	require.NoError(t, err)
}

func TestSessionRepository_PutWrapsDriverError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "calendar_sessions"`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Put(context.Background(), &entity.SessionRecord{UserID: "my-key", AccessTokenCipher: "enc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert session")
}

func TestSessionRepository_Get(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "calendar_sessions" WHERE user_id = $1`)).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow("my-key", "a@example.com", "enc-access", "enc-refresh", issuedAt, 1800, issuedAt))

		got, err := repo.Get(context.Background(), "my-key")
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", got.UserEmail)
		assert.Equal(t, "enc-access", got.AccessTokenCipher)
		assert.Equal(t, "enc-refresh", got.RefreshTokenCipher)
		assert.True(t, issuedAt.Equal(got.CreatedAt))
		assert.Equal(t, 1800, got.ExpiresIn)
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "calendar_sessions" WHERE user_id = $1`)).
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.Get(context.Background(), "missing")
		assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "calendar_sessions" WHERE user_id = $1`)).
		WithArgs("my-key").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "my-key"))
}

func TestSessionRepository_FindByEmail(t *testing.T) {
	repo, mock := newMockedRepository(t)
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "calendar_sessions" WHERE user_email = $1`)).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("key-1", "a@example.com", "enc-1", "", issuedAt, 1800, issuedAt).
			AddRow("key-2", "a@example.com", "enc-2", "", issuedAt, 1800, issuedAt))

	records, err := repo.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "key-1", records[0].UserID)
	assert.Equal(t, "key-2", records[1].UserID)
}
