package impl

import (
	"context"
	"log/slog"
	"strings"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"
	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"
	"calbridge/internal/usecase"

	"go.uber.org/fx"
)

// calendarBroker implements the CalendarBrokerUsecase interface.
type calendarBroker struct {
	authFlow        usecase.AuthFlowUsecase
	runner          usecase.CalendarRunner
	sessions        usecase.SessionManager
	state           service.StateService
	successRedirect string
	failureRedirect string
	logger          *slog.Logger
}

// CalendarBrokerParams holds dependencies for CalendarBroker, injected by Fx.
type CalendarBrokerParams struct {
	fx.In

	AuthFlow usecase.AuthFlowUsecase
	Runner   usecase.CalendarRunner
	Sessions usecase.SessionManager
	State    service.StateService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCalendarBroker is the constructor for calendarBroker.
func NewCalendarBroker(params CalendarBrokerParams) usecase.CalendarBrokerUsecase {
	return &calendarBroker{
		authFlow:        params.AuthFlow,
		runner:          params.Runner,
		sessions:        params.Sessions,
		state:           params.State,
		successRedirect: params.Config.HTTP.Redirects.Success,
		failureRedirect: params.Config.HTTP.Redirects.Failure,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *calendarBroker) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleAuthorizationCallback completes the consent round trip. The session is keyed by the
// user id carried in state, or by the verified email when the request carried none.
func (srv *calendarBroker) HandleAuthorizationCallback(ctx context.Context, code, state string) string {
	logger := srv.log(ctx)

	if code == "" {
		logger.Warn("Authorization callback without code")

		return srv.failureRedirect
	}

	var userID string
	if state != "" {
		parsed, err := srv.state.Parse(state)
		if err != nil {
			logger.Warn("Rejected authorization callback state", slog.Any("error", err))

			return srv.failureRedirect
		}
		userID = parsed
	}

	if _, err := srv.authFlow.ExchangeCodeForSession(ctx, code, userID); err != nil {
		logger.Warn("Authorization code exchange failed", slog.Any("error", err))

		return srv.failureRedirect
	}

	return srv.successRedirect
}

// HandleCalendarOperation makes sure userKey has a fresh session and runs req with it.
func (srv *calendarBroker) HandleCalendarOperation(ctx context.Context, userKey string, req *entity.ActionRequest) (*entity.OperationOutcome, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return nil, domainerrors.ErrMissingCalendarKey
	}

	fresh := srv.authFlow.EnsureFreshSession(ctx, userKey)

	switch fresh.Status {
	case entity.SessionAuthRequired:
		return &entity.OperationOutcome{AuthURL: fresh.AuthURL}, nil
	case entity.SessionFailed:
		return nil, fresh.Err
	}

	result, err := srv.runner.Run(ctx, fresh.Session.AccessToken, req)
	if err != nil {
		// The provider no longer accepts a token we still considered valid.
		if errors.Is(err, domainerrors.ErrProviderAuth) {
			srv.log(ctx).Info("Provider rejected access token, consent required", slog.String("user_id", userKey))

			return &entity.OperationOutcome{AuthURL: srv.authFlow.BuildAuthorizationURL(ctx, userKey)}, nil
		}

		return nil, err
	}

	return &entity.OperationOutcome{Result: result}, nil
}

func (srv *calendarBroker) AuthorizationURL(ctx context.Context, userKey string) (string, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return "", domainerrors.ErrMissingCalendarKey
	}

	return srv.authFlow.BuildAuthorizationURL(ctx, userKey), nil
}

func (srv *calendarBroker) SignOut(ctx context.Context, userKey string) error {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return domainerrors.ErrMissingCalendarKey
	}

	srv.sessions.DeleteSession(ctx, userKey)
	srv.log(ctx).Info("Session signed out", slog.String("user_id", userKey))

	return nil
}
