package impl

import (
	"context"
	"log/slog"
	"time"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"
	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"
	"calbridge/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// authFlowService implements the AuthFlowUsecase interface.
type authFlowService struct {
	oauth     service.OAuthProvider
	verifier  service.IDTokenVerifier
	state     service.StateService
	sessions  usecase.SessionManager
	publisher service.EventPublisher
	metrics   service.BrokerMetrics
	lifetime  time.Duration
	logger    *slog.Logger
	now       func() time.Time

	// refreshes is nil when oauth.serializeRefresh is off
	refreshes *singleflight.Group
}

// AuthFlowServiceParams holds dependencies for AuthFlowService, injected by Fx.
type AuthFlowServiceParams struct {
	fx.In

	OAuth     service.OAuthProvider
	Verifier  service.IDTokenVerifier
	State     service.StateService
	Sessions  usecase.SessionManager
	Publisher service.EventPublisher `optional:"true"`
	Metrics   service.BrokerMetrics  `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthFlowService is the constructor for authFlowService.
func NewAuthFlowService(params AuthFlowServiceParams) usecase.AuthFlowUsecase {
	lifetime := params.Config.OAuth.AccessTokenLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultAccessTokenLifetime
	}

	srv := &authFlowService{
		oauth:     params.OAuth,
		verifier:  params.Verifier,
		state:     params.State,
		sessions:  params.Sessions,
		publisher: publisherOrNop(params.Publisher),
		metrics:   metricsOrNop(params.Metrics),
		lifetime:  lifetime,
		logger:    params.Logger,
		now:       time.Now,
	}

	if params.Config.OAuth.RefreshSerialized() {
		srv.refreshes = &singleflight.Group{}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authFlowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildAuthorizationURL returns the consent URL, binding userID into a signed state when possible.
func (srv *authFlowService) BuildAuthorizationURL(ctx context.Context, userID string) string {
	var state string
	if userID != "" {
		issued, err := srv.state.Issue(userID)
		if err != nil {
			srv.log(ctx).Warn("Failed to issue oauth state, continuing without it", slog.Any("error", err))
		} else {
			state = issued
		}
	}

	return srv.oauth.AuthCodeURL(state)
}

// ExchangeCodeForSession trades code for tokens, verifies the identity token and stores the session.
func (srv *authFlowService) ExchangeCodeForSession(ctx context.Context, code, userID string) (*entity.Session, error) {
	token, err := srv.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenExchangeFailed, err.Error())
	}

	claims, err := srv.verifier.VerifyIDToken(ctx, token.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenExchangeFailed, err.Error())
	}

	if userID == "" {
		userID = claims.Email
	}

	session := &entity.Session{
		UserID:       userID,
		UserEmail:    claims.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		CreatedAt:    srv.now(),
		ExpiresIn:    int(srv.lifetime / time.Second),
	}

	if session.RefreshToken == "" {
		srv.log(ctx).Warn("Provider granted no refresh token", slog.String("user_id", userID))
	}

	srv.sessions.StoreSession(ctx, storeInput(session))

	srv.log(ctx).Info("Authorization completed",
		slog.String("user_id", userID),
		slog.String("user_email", claims.Email),
	)

	return session, nil
}

// EnsureFreshSession resolves a usable session for userID, refreshing a stale one.
func (srv *authFlowService) EnsureFreshSession(ctx context.Context, userID string) entity.FreshSession {
	session := srv.sessions.GetSession(ctx, userID)

	switch {
	case session == nil:
		return entity.AuthRequired(srv.BuildAuthorizationURL(ctx, userID))
	case srv.sessions.IsValid(session):
		return entity.Ready(session)
	case !srv.sessions.IsRefreshable(session):
		return entity.AuthRequired(srv.BuildAuthorizationURL(ctx, userID))
	}

	if srv.refreshes == nil {
		return srv.refresh(ctx, session)
	}

	// Concurrent callers for one user share a single refresh. The shared flight outlives
	// the cancellation of whichever request started it.
	result, _, _ := srv.refreshes.Do(userID, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)

		current := srv.sessions.GetSession(flightCtx, userID)
		if srv.sessions.IsValid(current) {
			srv.metrics.RefreshObserved(service.RefreshReused)

			return entity.Ready(current), nil
		}
		if !srv.sessions.IsRefreshable(current) {
			return entity.AuthRequired(srv.BuildAuthorizationURL(flightCtx, userID)), nil
		}

		return srv.refresh(flightCtx, current), nil
	})

	return result.(entity.FreshSession)
}

func (srv *authFlowService) refresh(ctx context.Context, session *entity.Session) entity.FreshSession {
	logger := srv.log(ctx).With(slog.String("user_id", session.UserID))

	token, err := srv.oauth.Refresh(ctx, session.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsRevoked) {
			srv.metrics.RefreshObserved(service.RefreshRevoked)
			logger.Info("Refresh token revoked, consent required", slog.Any("error", err))
			srv.publish(ctx, service.EventSessionReauthRequired, session)

			return entity.AuthRequired(srv.BuildAuthorizationURL(ctx, session.UserID))
		}

		srv.metrics.RefreshObserved(service.RefreshFailed)
		logger.Warn("Failed to refresh access token", slog.Any("error", err))

		return entity.Failed(errors.Wrap(domainerrors.ErrRefreshFailed, err.Error()))
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = session.RefreshToken
	}

	fresh := &entity.Session{
		UserID:       session.UserID,
		UserEmail:    session.UserEmail,
		AccessToken:  token.AccessToken,
		RefreshToken: refreshToken,
		CreatedAt:    srv.now(),
		ExpiresIn:    int(srv.lifetime / time.Second),
	}

	srv.sessions.StoreSession(ctx, storeInput(fresh))
	srv.metrics.RefreshObserved(service.RefreshSucceeded)
	srv.publish(ctx, service.EventSessionRefreshed, fresh)
	logger.Debug("Access token refreshed")

	return entity.Ready(fresh)
}

func (srv *authFlowService) publish(ctx context.Context, eventType string, session *entity.Session) {
	publishSessionEvent(ctx, srv.publisher, srv.log(ctx), &service.SessionEvent{
		Type:       eventType,
		UserID:     session.UserID,
		UserEmail:  session.UserEmail,
		OccurredAt: srv.now(),
	})
}

func storeInput(session *entity.Session) usecase.StoreSessionInput {
	return usecase.StoreSessionInput{
		UserID:       session.UserID,
		UserEmail:    session.UserEmail,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		CreatedAt:    session.CreatedAt,
		ExpiresIn:    session.ExpiresIn,
	}
}
