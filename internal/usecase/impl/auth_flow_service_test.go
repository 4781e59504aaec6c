package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"
	"calbridge/internal/infra/persistence/memory"
	mockService "calbridge/internal/mocks/service"
	mockUsecase "calbridge/internal/mocks/usecase"
	"calbridge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAuthURL = "https://accounts.google.com/o/oauth2/v2/auth?access_type=offline&client_id=client-id&prompt=consent&response_type=code&state=signed"

type authFlowFixture struct {
	srv      *authFlowService
	oauth    *mockService.MockOAuthProvider
	verifier *mockService.MockIDTokenVerifier
	state    *mockService.MockStateService
	sessions *mockUsecase.MockSessionManager
	metrics  *mockService.MockBrokerMetrics
}

func newAuthFlowFixture(t *testing.T, serialize bool) *authFlowFixture {
	t.Helper()

	f := &authFlowFixture{
		oauth:    mockService.NewMockOAuthProvider(t),
		verifier: mockService.NewMockIDTokenVerifier(t),
		state:    mockService.NewMockStateService(t),
		sessions: mockUsecase.NewMockSessionManager(t),
		metrics:  mockService.NewMockBrokerMetrics(t),
	}

	cfg := newTestConfig()
	cfg.OAuth.SerializeRefresh = &serialize

	f.srv = NewAuthFlowService(AuthFlowServiceParams{
		OAuth:    f.oauth,
		Verifier: f.verifier,
		State:    f.state,
		Sessions: f.sessions,
		Metrics:  f.metrics,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}).(*authFlowService)
	f.srv.now = fixedClock(testNow)

	return f
}

func (f *authFlowFixture) expectAuthURL(userID string) {
	f.state.EXPECT().Issue(userID).Return("signed", nil)
	f.oauth.EXPECT().AuthCodeURL("signed").Return(testAuthURL)
}

func expiredSession(userID string) *entity.Session {
	return &entity.Session{
		UserID:       userID,
		UserEmail:    "ada@example.com",
		AccessToken:  "stale",
		RefreshToken: "rt-1",
		CreatedAt:    testNow.Add(-3601 * time.Second),
		ExpiresIn:    3600,
	}
}

func TestAuthFlow_BuildAuthorizationURL(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx := context.Background()

	f.expectAuthURL("user-1")
	assert.Equal(t, testAuthURL, f.srv.BuildAuthorizationURL(ctx, "user-1"))

	f.oauth.EXPECT().AuthCodeURL("").Return("https://accounts.google.com/o/oauth2/v2/auth?response_type=code").Once()
	assert.NotEmpty(t, f.srv.BuildAuthorizationURL(ctx, ""))
}

func TestAuthFlow_BuildAuthorizationURL_StateFailure(t *testing.T) {
	f := newAuthFlowFixture(t, true)

	f.state.EXPECT().Issue("user-1").Return("", errors.New("no secret"))
	f.oauth.EXPECT().AuthCodeURL("").Return("https://accounts.google.com/o/oauth2/v2/auth")

	assert.NotEmpty(t, f.srv.BuildAuthorizationURL(context.Background(), "user-1"))
}

func TestAuthFlow_ExchangeCodeForSession(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		wantUserID string
	}{
		{name: "bound user id", userID: "user-1", wantUserID: "user-1"},
		{name: "falls back to email", userID: "", wantUserID: "ada@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFlowFixture(t, true)
			ctx := context.Background()

			f.oauth.EXPECT().Exchange(ctx, "code-1").Return(&service.OAuthToken{
				AccessToken:  "at",
				RefreshToken: "rt",
				IDToken:      "id-token",
			}, nil)
			f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.IDTokenClaims{Email: "ada@example.com"}, nil)
			f.sessions.EXPECT().StoreSession(ctx, usecase.StoreSessionInput{
				UserID:       tt.wantUserID,
				UserEmail:    "ada@example.com",
				AccessToken:  "at",
				RefreshToken: "rt",
				CreatedAt:    testNow,
				ExpiresIn:    1800,
			}).Return()

			session, err := f.srv.ExchangeCodeForSession(ctx, "code-1", tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, session.UserID)
			assert.Equal(t, 1800, session.ExpiresIn)
		})
	}
}

func TestAuthFlow_ExchangeCodeForSession_Failures(t *testing.T) {
	t.Run("exchange rejected", func(t *testing.T) {
		f := newAuthFlowFixture(t, true)
		ctx := context.Background()

		f.oauth.EXPECT().Exchange(ctx, "bad").Return(nil, errors.New("invalid_grant"))

		_, err := f.srv.ExchangeCodeForSession(ctx, "bad", "user-1")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenExchangeFailed))
	})

	t.Run("id token rejected", func(t *testing.T) {
		f := newAuthFlowFixture(t, true)
		ctx := context.Background()

		f.oauth.EXPECT().Exchange(ctx, "code").Return(&service.OAuthToken{AccessToken: "at", IDToken: "forged"}, nil)
		f.verifier.EXPECT().VerifyIDToken(ctx, "forged").Return(nil, errors.New("bad signature"))

		_, err := f.srv.ExchangeCodeForSession(ctx, "code", "user-1")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenExchangeFailed))
	})
}

func TestAuthFlow_EnsureFreshSession_NoSession(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx := context.Background()

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(nil)
	f.expectAuthURL("user-1")

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	assert.Equal(t, entity.SessionAuthRequired, fresh.Status)
	assert.Equal(t, testAuthURL, fresh.AuthURL)
}

func TestAuthFlow_EnsureFreshSession_Valid(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx := context.Background()
	session := &entity.Session{UserID: "user-1", AccessToken: "at", CreatedAt: testNow, ExpiresIn: 1800}

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(session)
	f.sessions.EXPECT().IsValid(session).Return(true)

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	assert.Equal(t, entity.SessionReady, fresh.Status)
	assert.Same(t, session, fresh.Session)
}

func TestAuthFlow_EnsureFreshSession_NotRefreshable(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx := context.Background()
	session := expiredSession("user-1")
	session.RefreshToken = ""

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(session)
	f.sessions.EXPECT().IsValid(session).Return(false)
	f.sessions.EXPECT().IsRefreshable(session).Return(false)
	f.expectAuthURL("user-1")

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	assert.Equal(t, entity.SessionAuthRequired, fresh.Status)
}

func TestAuthFlow_EnsureFreshSession_Refresh(t *testing.T) {
	tests := []struct {
		name            string
		newRefreshToken string
		wantRefresh     string
	}{
		{name: "provider keeps refresh token", newRefreshToken: "", wantRefresh: "rt-1"},
		{name: "provider rotates refresh token", newRefreshToken: "rt-2", wantRefresh: "rt-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFlowFixture(t, false)
			ctx := context.Background()
			session := expiredSession("user-1")

			f.sessions.EXPECT().GetSession(ctx, "user-1").Return(session)
			f.sessions.EXPECT().IsValid(session).Return(false)
			f.sessions.EXPECT().IsRefreshable(session).Return(true)
			f.oauth.EXPECT().Refresh(ctx, "rt-1").Return(&service.OAuthToken{
				AccessToken:  "fresh",
				RefreshToken: tt.newRefreshToken,
			}, nil)
			f.sessions.EXPECT().StoreSession(ctx, usecase.StoreSessionInput{
				UserID:       "user-1",
				UserEmail:    "ada@example.com",
				AccessToken:  "fresh",
				RefreshToken: tt.wantRefresh,
				CreatedAt:    testNow,
				ExpiresIn:    1800,
			}).Return()
			f.metrics.EXPECT().RefreshObserved(service.RefreshSucceeded).Return()

			fresh := f.srv.EnsureFreshSession(ctx, "user-1")
			require.Equal(t, entity.SessionReady, fresh.Status)
			assert.Equal(t, "fresh", fresh.Session.AccessToken)
			assert.Equal(t, tt.wantRefresh, fresh.Session.RefreshToken)
			assert.Equal(t, "ada@example.com", fresh.Session.UserEmail)
		})
	}
}

func TestAuthFlow_EnsureFreshSession_RevokedGrantRequiresAuth(t *testing.T) {
	f := newAuthFlowFixture(t, false)
	ctx := context.Background()
	session := expiredSession("user-1")

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(session)
	f.sessions.EXPECT().IsValid(session).Return(false)
	f.sessions.EXPECT().IsRefreshable(session).Return(true)
	f.oauth.EXPECT().Refresh(ctx, "rt-1").Return(nil, errors.Wrap(service.ErrCredentialsRevoked, `oauth2: "invalid_grant"`))
	f.metrics.EXPECT().RefreshObserved(service.RefreshRevoked).Return()
	f.expectAuthURL("user-1")

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	assert.Equal(t, entity.SessionAuthRequired, fresh.Status)
	assert.NotEmpty(t, fresh.AuthURL)
	assert.Nil(t, fresh.Err)
}

func TestAuthFlow_EnsureFreshSession_TransientFailure(t *testing.T) {
	f := newAuthFlowFixture(t, false)
	ctx := context.Background()
	session := expiredSession("user-1")

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(session)
	f.sessions.EXPECT().IsValid(session).Return(false)
	f.sessions.EXPECT().IsRefreshable(session).Return(true)
	f.oauth.EXPECT().Refresh(ctx, "rt-1").Return(nil, errors.New("503 Service Unavailable"))
	f.metrics.EXPECT().RefreshObserved(service.RefreshFailed).Return()

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	assert.Equal(t, entity.SessionFailed, fresh.Status)
	assert.Empty(t, fresh.AuthURL)
	assert.True(t, errors.Is(fresh.Err, domainerrors.ErrRefreshFailed))
}

func TestAuthFlow_EnsureFreshSession_ReusesConcurrentRefresh(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx := context.Background()
	stale := expiredSession("user-1")
	refreshed := &entity.Session{UserID: "user-1", AccessToken: "fresh", RefreshToken: "rt-1", CreatedAt: testNow, ExpiresIn: 1800}

	f.sessions.EXPECT().GetSession(ctx, "user-1").Return(stale).Once()
	f.sessions.EXPECT().GetSession(mock.Anything, "user-1").Return(refreshed).Once()
	f.sessions.EXPECT().IsValid(stale).Return(false)
	f.sessions.EXPECT().IsRefreshable(stale).Return(true)
	f.sessions.EXPECT().IsValid(refreshed).Return(true)
	f.metrics.EXPECT().RefreshObserved(service.RefreshReused).Return()

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	require.Equal(t, entity.SessionReady, fresh.Status)
	assert.Equal(t, "fresh", fresh.Session.AccessToken)
}

// A shared refresh must not fail because the request that started it went away.
func TestAuthFlow_EnsureFreshSession_SharedRefreshIgnoresCallerCancellation(t *testing.T) {
	f := newAuthFlowFixture(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stale := expiredSession("user-1")

	f.sessions.EXPECT().GetSession(mock.Anything, "user-1").Return(stale).Times(2)
	f.sessions.EXPECT().IsValid(stale).Return(false)
	f.sessions.EXPECT().IsRefreshable(stale).Return(true)
	f.oauth.EXPECT().Refresh(mock.Anything, "rt-1").RunAndReturn(func(flightCtx context.Context, _ string) (*service.OAuthToken, error) {
		if err := flightCtx.Err(); err != nil {
			return nil, err
		}

		return &service.OAuthToken{AccessToken: "fresh"}, nil
	})
	f.sessions.EXPECT().StoreSession(mock.Anything, mock.Anything).Return()
	f.metrics.EXPECT().RefreshObserved(service.RefreshSucceeded).Return()

	fresh := f.srv.EnsureFreshSession(ctx, "user-1")
	require.Equal(t, entity.SessionReady, fresh.Status)
	assert.Equal(t, "fresh", fresh.Session.AccessToken)
}

// Concurrent requests for one user that all observe an expired session refresh once.
func TestAuthFlow_EnsureFreshSession_SingleRefreshUnderConcurrency(t *testing.T) {
	repo := memory.NewSessionRepository()
	sessions := newTestSessionManager(t, repo)
	oauth := mockService.NewMockOAuthProvider(t)
	ctx := context.Background()

	sessions.StoreSession(ctx, storeInput(expiredSession("user-1")))

	cfg := newTestConfig()
	srv := NewAuthFlowService(AuthFlowServiceParams{
		OAuth:    oauth,
		Verifier: mockService.NewMockIDTokenVerifier(t),
		State:    mockService.NewMockStateService(t),
		Sessions: sessions,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}).(*authFlowService)
	srv.now = fixedClock(testNow)

	var refreshCalls atomic.Int32
	release := make(chan struct{})
	oauth.EXPECT().Refresh(mock.Anything, "rt-1").RunAndReturn(func(context.Context, string) (*service.OAuthToken, error) {
		refreshCalls.Add(1)
		<-release

		return &service.OAuthToken{AccessToken: "fresh"}, nil
	}).Maybe()

	const callers = 8
	results := make([]entity.FreshSession, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = srv.EnsureFreshSession(ctx, "user-1")
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), refreshCalls.Load())
	for _, result := range results {
		require.Equal(t, entity.SessionReady, result.Status)
		assert.Equal(t, "fresh", result.Session.AccessToken)
	}
}
