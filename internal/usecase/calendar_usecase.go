package usecase

import (
	"context"

	"calbridge/internal/domain/entity"
)

// CalendarRunner executes one action against the user's dedicated calendar.
type CalendarRunner interface {
	Run(ctx context.Context, accessToken string, req *entity.ActionRequest) (*entity.ActionResult, error)
}

// CalendarBrokerUsecase is the surface the HTTP layer calls.
type CalendarBrokerUsecase interface {
	// HandleAuthorizationCallback completes consent and returns the page to redirect to.
	HandleAuthorizationCallback(ctx context.Context, code, state string) string

	// HandleCalendarOperation runs req for userKey, or asks for consent through OperationOutcome.AuthURL.
	HandleCalendarOperation(ctx context.Context, userKey string, req *entity.ActionRequest) (*entity.OperationOutcome, error)

	// AuthorizationURL returns the consent URL bound to userKey.
	AuthorizationURL(ctx context.Context, userKey string) (string, error)

	// SignOut forgets the session stored for userKey.
	SignOut(ctx context.Context, userKey string) error
}

// TimeAssistantUsecase answers "what time is it" for a time zone.
type TimeAssistantUsecase interface {
	CurrentTime(ctx context.Context, timeZone string) (*entity.CurrentTime, error)
}
