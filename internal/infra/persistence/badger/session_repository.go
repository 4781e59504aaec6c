// Package badger stores sessions in an embedded Badger database.
//
// Layout:
//
//	session/<userID>              -> JSON record
//	email/<email>\x00<userID>     -> empty, secondary index for FindByEmail
package badger

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
	"calbridge/internal/errors"

	"github.com/dgraph-io/badger/v3"
)

const (
	sessionPrefix = "session/"
	emailPrefix   = "email/"
	emailSep      = "\x00"
)

type storedSession struct {
	UserID             string    `json:"userId"`
	UserEmail          string    `json:"userEmail"`
	AccessTokenCipher  string    `json:"accessToken"`
	RefreshTokenCipher string    `json:"refreshToken"`
	CreatedAt          time.Time `json:"createdAt"`
	ExpiresIn          int       `json:"expiresIn"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type sessionRepository struct {
	db *badger.DB
}

// Open opens (or creates) the database at path. An empty path opens an in-memory database.
func Open(path string, logger *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(newBadgerLogger(logger))
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger at %q", path)
	}

	return db, nil
}

// NewSessionRepository wraps an open database. Close closes it.
func NewSessionRepository(db *badger.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func sessionKey(userID string) []byte {
	return []byte(sessionPrefix + userID)
}

func emailIndexPrefix(email string) []byte {
	return []byte(emailPrefix + email + emailSep)
}

func emailIndexKey(email, userID string) []byte {
	return append(emailIndexPrefix(email), userID...)
}

// Put replaces the record and moves its email index entry in one transaction.
func (r *sessionRepository) Put(_ context.Context, record *entity.SessionRecord) error {
	stored := storedSession{
		UserID:             record.UserID,
		UserEmail:          record.UserEmail,
		AccessTokenCipher:  record.AccessTokenCipher,
		RefreshTokenCipher: record.RefreshTokenCipher,
		CreatedAt:          record.CreatedAt,
		ExpiresIn:          record.ExpiresIn,
		UpdatedAt:          time.Now(),
	}
	value, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		previous, err := getStored(txn, record.UserID)
		if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return err
		}
		if previous != nil && previous.UserEmail != "" && previous.UserEmail != record.UserEmail {
			if err := txn.Delete(emailIndexKey(previous.UserEmail, record.UserID)); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := txn.Set(sessionKey(record.UserID), value); err != nil {
			return errors.WithStack(err)
		}
		if record.UserEmail != "" {
			if err := txn.Set(emailIndexKey(record.UserEmail, record.UserID), nil); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})

	return errors.Wrap(err, "put session")
}

func (r *sessionRepository) Get(_ context.Context, userID string) (*entity.SessionRecord, error) {
	var record *entity.SessionRecord

	err := r.db.View(func(txn *badger.Txn) error {
		stored, err := getStored(txn, userID)
		if err != nil {
			return err
		}
		record = toSessionDomain(stored)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "get session")
	}

	return record, nil
}

func (r *sessionRepository) Delete(_ context.Context, userID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		stored, err := getStored(txn, userID)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if stored.UserEmail != "" {
			if err := txn.Delete(emailIndexKey(stored.UserEmail, userID)); err != nil {
				return errors.WithStack(err)
			}
		}

		return errors.WithStack(txn.Delete(sessionKey(userID)))
	})

	return errors.Wrap(err, "delete session")
}

func (r *sessionRepository) FindByEmail(_ context.Context, userEmail string) ([]*entity.SessionRecord, error) {
	var records []*entity.SessionRecord

	err := r.db.View(func(txn *badger.Txn) error {
		prefix := emailIndexPrefix(userEmail)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		var userIDs []string
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			userIDs = append(userIDs, string(key[len(prefix):]))
		}

		for _, userID := range userIDs {
			stored, err := getStored(txn, userID)
			if errors.Is(err, repository.ErrSessionNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			records = append(records, toSessionDomain(stored))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "find sessions by email")
	}

	return records, nil
}

func (r *sessionRepository) Close() error {
	return errors.WithStack(r.db.Close())
}

func getStored(txn *badger.Txn, userID string) (*storedSession, error) {
	item, err := txn.Get(sessionKey(userID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var stored storedSession
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, errors.Wrapf(err, "decode session %q", userID)
	}

	return &stored, nil
}

func toSessionDomain(stored *storedSession) *entity.SessionRecord {
	return &entity.SessionRecord{
		UserID:             stored.UserID,
		UserEmail:          stored.UserEmail,
		AccessTokenCipher:  stored.AccessTokenCipher,
		RefreshTokenCipher: stored.RefreshTokenCipher,
		CreatedAt:          stored.CreatedAt,
		ExpiresIn:          stored.ExpiresIn,
		UpdatedAt:          stored.UpdatedAt,
	}
}
