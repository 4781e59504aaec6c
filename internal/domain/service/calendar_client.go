package service

import (
	"context"

	"calbridge/internal/domain/entity"
)

// CalendarClientFactory opens a calendar client acting with a user's access token.
type CalendarClientFactory interface {
	ForAccessToken(ctx context.Context, accessToken string) (CalendarClient, error)
}

// CalendarClient is the subset of the provider's calendar API the runner needs.
// Failures are domain errors: ErrProviderAuth for rejected credentials, ErrProviderError otherwise.
type CalendarClient interface {
	// FindCalendarByName looks the calendar up by display name in the user's calendar list.
	FindCalendarByName(ctx context.Context, name string) (calendarID string, found bool, err error)

	// CreateCalendar creates a secondary calendar and returns its id.
	CreateCalendar(ctx context.Context, name, timeZone string) (string, error)

	InsertEvent(ctx context.Context, calendarID string, event *entity.CalendarEvent) (*entity.CalendarEvent, error)

	// ListEvents expands recurring events and orders them by start time.
	ListEvents(ctx context.Context, calendarID string, query entity.EventQuery) ([]*entity.CalendarEvent, error)

	PatchEvent(ctx context.Context, calendarID, eventID string, patch *entity.EventPatch) (*entity.CalendarEvent, error)

	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
