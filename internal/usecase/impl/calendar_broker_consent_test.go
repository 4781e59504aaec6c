package impl

import (
	"context"
	"net/url"
	"testing"

	"calbridge/internal/domain/entity"
	"calbridge/internal/domain/service"
	"calbridge/internal/infra/auth"
	"calbridge/internal/infra/persistence/memory"
	mockService "calbridge/internal/mocks/service"
	mockUsecase "calbridge/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The consent round trip must leave the session under the caller's calendar key, not the email.
func TestCalendarBroker_ConsentRoundTripWithDefaultConfig(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	require.Empty(t, cfg.OAuth.StateSecret)

	states, err := auth.NewStateService(cfg)
	require.NoError(t, err)

	oauth := mockService.NewMockOAuthProvider(t)
	verifier := mockService.NewMockIDTokenVerifier(t)
	runner := mockUsecase.NewMockCalendarRunner(t)
	sessions := newTestSessionManager(t, memory.NewSessionRepository())

	authFlow := NewAuthFlowService(AuthFlowServiceParams{
		OAuth:    oauth,
		Verifier: verifier,
		State:    states,
		Sessions: sessions,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}).(*authFlowService)
	authFlow.now = fixedClock(testNow)

	broker := NewCalendarBroker(CalendarBrokerParams{
		AuthFlow: authFlow,
		Runner:   runner,
		Sessions: sessions,
		State:    states,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	req := &entity.ActionRequest{Action: "list"}
	listed := &entity.ActionResult{Kind: entity.ResultNoEvents, Message: "No upcoming events found."}

	oauth.EXPECT().AuthCodeURL(mock.Anything).RunAndReturn(func(state string) string {
		return "https://accounts.example/auth?state=" + url.QueryEscape(state)
	})
	oauth.EXPECT().Exchange(mock.Anything, "code-1").
		Return(&service.OAuthToken{AccessToken: "at-1", RefreshToken: "rt-1", IDToken: "id-token"}, nil)
	verifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").
		Return(&service.IDTokenClaims{Email: "someone@example.com", EmailVerified: true}, nil)
	runner.EXPECT().Run(mock.Anything, "at-1", req).Return(listed, nil).Once()

	first, err := broker.HandleCalendarOperation(ctx, "my-key", req)
	require.NoError(t, err)
	require.True(t, first.NeedsAuth())

	consentURL, err := url.Parse(first.AuthURL)
	require.NoError(t, err)
	state := consentURL.Query().Get("state")
	require.NotEmpty(t, state)

	assert.Equal(t, "/auth_s.html", broker.HandleAuthorizationCallback(ctx, "code-1", state))

	second, err := broker.HandleCalendarOperation(ctx, "my-key", req)
	require.NoError(t, err)
	assert.False(t, second.NeedsAuth())
	assert.Same(t, listed, second.Result)

	assert.Nil(t, sessions.GetSession(ctx, "someone@example.com"))
}
