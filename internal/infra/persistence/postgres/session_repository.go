// Package postgres contains the concrete implementation of the session store using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
	"calbridge/internal/errors"
	"calbridge/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionUpsertColumns are rewritten on conflict. created_at is the token issue time and
// must follow every refresh.
var sessionUpsertColumns = []string{
	"user_email",
	"access_token_cipher",
	"refresh_token_cipher",
	"created_at",
	"expires_in",
	"updated_at",
}

// sessionRepository implements repository.SessionRepository on a single table.
type sessionRepository struct {
	db    *gorm.DB
	table string
}

// NewSessionRepository binds the repository to table, or the default table when empty.
func NewSessionRepository(db *gorm.DB, table string) repository.SessionRepository {
	if table == "" {
		table = model.DefaultSessionTable
	}

	return &sessionRepository{db: db, table: table}
}

// AutoMigrate creates or updates the session table.
func AutoMigrate(ctx context.Context, db *gorm.DB, table string) error {
	if table == "" {
		table = model.DefaultSessionTable
	}

	return errors.Wrapf(db.WithContext(ctx).Table(table).AutoMigrate(&model.SessionModel{}), "migrate %s", table)
}

func (repo *sessionRepository) scoped(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.table)
}

// Put upserts on user_id so a record is always fully overwritten.
func (repo *sessionRepository) Put(ctx context.Context, record *entity.SessionRecord) error {
	sessionM := fromSessionDomain(record)
	sessionM.UpdatedAt = time.Now()

	err := repo.scoped(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(sessionUpsertColumns),
		}).
		Create(sessionM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "session record is missing required fields")
		}

		return errors.Wrap(err, "failed to upsert session")
	}

	return nil
}

func (repo *sessionRepository) Get(ctx context.Context, userID string) (*entity.SessionRecord, error) {
	var sessionM model.SessionModel

	err := repo.scoped(ctx).Where("user_id = ?", userID).First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to get session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) Delete(ctx context.Context, userID string) error {
	err := repo.scoped(ctx).Where("user_id = ?", userID).Delete(&model.SessionModel{}).Error

	return errors.Wrap(err, "failed to delete session")
}

func (repo *sessionRepository) FindByEmail(ctx context.Context, userEmail string) ([]*entity.SessionRecord, error) {
	var sessionMs []*model.SessionModel

	if err := repo.scoped(ctx).Where("user_email = ?", userEmail).Find(&sessionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by email")
	}

	records := make([]*entity.SessionRecord, 0, len(sessionMs))
	for _, sessionM := range sessionMs {
		records = append(records, toSessionDomain(sessionM))
	}

	return records, nil
}

// Close is a no-op; the connection pool is closed by the fx hook registered in New.
func (repo *sessionRepository) Close() error {
	return nil
}

func toSessionDomain(data *model.SessionModel) *entity.SessionRecord {
	return &entity.SessionRecord{
		UserID:             data.UserID,
		UserEmail:          data.UserEmail,
		AccessTokenCipher:  data.AccessTokenCipher,
		RefreshTokenCipher: data.RefreshTokenCipher,
		CreatedAt:          data.CreatedAt,
		ExpiresIn:          data.ExpiresIn,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromSessionDomain(data *entity.SessionRecord) *model.SessionModel {
	return &model.SessionModel{
		UserID:             data.UserID,
		UserEmail:          data.UserEmail,
		AccessTokenCipher:  data.AccessTokenCipher,
		RefreshTokenCipher: data.RefreshTokenCipher,
		CreatedAt:          data.CreatedAt,
		ExpiresIn:          data.ExpiresIn,
		UpdatedAt:          data.UpdatedAt,
	}
}
