// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	deliverycontext "calbridge/internal/delivery/context"
	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/repository"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"
	"calbridge/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Store operations reported through BrokerMetrics.StoreFailed.
const (
	storeOpEncrypt = "encrypt"
	storeOpDecrypt = "decrypt"
	storeOpGet     = "get"
	storeOpPut     = "put"
	storeOpDelete  = "delete"
	storeOpSweep   = "dedup_sweep"
)

// sessionManager implements the SessionManager interface on top of an encrypted store.
type sessionManager struct {
	repo      repository.SessionRepository
	cipher    service.CredentialCipher
	publisher service.EventPublisher
	metrics   service.BrokerMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// SessionManagerParams holds dependencies for SessionManager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	Repo      repository.SessionRepository
	Cipher    service.CredentialCipher
	Publisher service.EventPublisher `optional:"true"`
	Metrics   service.BrokerMetrics  `optional:"true"`
	Logger    *slog.Logger
}

// NewSessionManager is the constructor for sessionManager.
func NewSessionManager(params SessionManagerParams) usecase.SessionManager {
	return &sessionManager{
		repo:      params.Repo,
		cipher:    params.Cipher,
		publisher: publisherOrNop(params.Publisher),
		metrics:   metricsOrNop(params.Metrics),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StoreSession encrypts and upserts the session after removing other user ids that share its email.
func (srv *sessionManager) StoreSession(ctx context.Context, input usecase.StoreSessionInput) {
	logger := srv.log(ctx).With(slog.String("user_id", input.UserID))

	accessCipher, err := srv.seal(input.AccessToken)
	if err != nil {
		srv.storeFailed(logger, storeOpEncrypt, err)

		return
	}

	refreshCipher, err := srv.seal(input.RefreshToken)
	if err != nil {
		srv.storeFailed(logger, storeOpEncrypt, err)

		return
	}

	if input.UserEmail != "" {
		srv.sweepDuplicates(ctx, logger, input.UserID, input.UserEmail)
	}

	record := &entity.SessionRecord{
		UserID:             input.UserID,
		UserEmail:          input.UserEmail,
		AccessTokenCipher:  accessCipher,
		RefreshTokenCipher: refreshCipher,
		CreatedAt:          input.CreatedAt,
		ExpiresIn:          input.ExpiresIn,
		UpdatedAt:          srv.now(),
	}

	if err := srv.repo.Put(ctx, record); err != nil {
		srv.storeFailed(logger, storeOpPut, err)

		return
	}

	logger.Debug("Session stored", slog.Int("expires_in", input.ExpiresIn))
	srv.publish(ctx, service.EventSessionStored, input.UserID, input.UserEmail)
}

// sweepDuplicates deletes, concurrently, every record for email owned by another user id.
// Partial failures are logged; the caller proceeds with its write either way.
func (srv *sessionManager) sweepDuplicates(ctx context.Context, logger *slog.Logger, userID, email string) {
	records, err := srv.repo.FindByEmail(ctx, email)
	if err != nil {
		srv.storeFailed(logger, storeOpSweep, err)

		return
	}

	var (
		g       errgroup.Group
		failed  atomic.Int32
		removed atomic.Int32
	)

	for _, record := range records {
		if record.UserID == userID {
			continue
		}

		staleID := record.UserID
		g.Go(func() error {
			if err := srv.repo.Delete(ctx, staleID); err != nil {
				failed.Add(1)
				logger.Warn("Failed to delete duplicate session",
					slog.String("duplicate_user_id", staleID),
					slog.Any("error", err),
				)

				return err
			}

			removed.Add(1)
			srv.publish(ctx, service.EventSessionDeleted, staleID, email)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		srv.metrics.StoreFailed(storeOpSweep)
		logger.Warn("Duplicate session sweep partially failed",
			slog.Int("failed", int(failed.Load())),
			slog.Int("removed", int(removed.Load())),
		)

		return
	}

	if n := removed.Load(); n > 0 {
		logger.Info("Removed duplicate sessions for email", slog.Int("removed", int(n)))
	}
}

// GetSession reads and decrypts the session. Absence and every failure yield nil.
func (srv *sessionManager) GetSession(ctx context.Context, userID string) *entity.Session {
	logger := srv.log(ctx).With(slog.String("user_id", userID))

	record, err := srv.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			logger.Debug("No stored session")

			return nil
		}

		srv.storeFailed(logger, storeOpGet, err)

		return nil
	}

	accessToken, err := srv.open(record.AccessTokenCipher)
	if err != nil {
		srv.storeFailed(logger, storeOpDecrypt, err)

		return nil
	}

	refreshToken, err := srv.open(record.RefreshTokenCipher)
	if err != nil {
		srv.storeFailed(logger, storeOpDecrypt, err)

		return nil
	}

	return &entity.Session{
		UserID:       record.UserID,
		UserEmail:    record.UserEmail,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    record.CreatedAt,
		ExpiresIn:    record.ExpiresIn,
	}
}

// DeleteSession removes the session for userID. Failures are logged only.
func (srv *sessionManager) DeleteSession(ctx context.Context, userID string) {
	logger := srv.log(ctx).With(slog.String("user_id", userID))

	if err := srv.repo.Delete(ctx, userID); err != nil {
		srv.storeFailed(logger, storeOpDelete, err)

		return
	}

	srv.publish(ctx, service.EventSessionDeleted, userID, "")
}

func (srv *sessionManager) IsValid(session *entity.Session) bool {
	return session.IsValid(srv.now())
}

func (srv *sessionManager) IsRefreshable(session *entity.Session) bool {
	return session.IsRefreshable()
}

// seal encrypts a token. Empty tokens are stored empty so they stay absent after a read.
func (srv *sessionManager) seal(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	return srv.cipher.Encrypt(token)
}

func (srv *sessionManager) open(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	return srv.cipher.Decrypt(ciphertext)
}

func (srv *sessionManager) storeFailed(logger *slog.Logger, op string, err error) {
	srv.metrics.StoreFailed(op)
	logger.Warn("Session store operation failed",
		slog.String("op", op),
		slog.Any("error", err),
	)
}

func (srv *sessionManager) publish(ctx context.Context, eventType, userID, email string) {
	publishSessionEvent(ctx, srv.publisher, srv.log(ctx), &service.SessionEvent{
		Type:       eventType,
		UserID:     userID,
		UserEmail:  email,
		OccurredAt: srv.now(),
	})
}
