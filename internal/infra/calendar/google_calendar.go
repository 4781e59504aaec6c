// Package calendar talks to the Google Calendar v3 API on behalf of a user.
package calendar

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	allDayLayout     = "2006-01-02"
	orderByStartTime = "startTime"

	invalidCredentialsText = "Invalid Credentials"
)

type googleClientFactory struct {
	logger *slog.Logger

	// endpoint overrides the API base URL, used against test servers
	endpoint string
	base     http.RoundTripper
}

// NewClientFactory creates a factory for Google Calendar clients authorised by bearer tokens.
func NewClientFactory(logger *slog.Logger) service.CalendarClientFactory {
	return &googleClientFactory{logger: logger}
}

func newClientFactoryWithEndpoint(logger *slog.Logger, endpoint string, base http.RoundTripper) *googleClientFactory {
	return &googleClientFactory{logger: logger, endpoint: endpoint, base: base}
}

// ForAccessToken opens a Calendar service that sends accessToken as a bearer token.
func (f *googleClientFactory) ForAccessToken(ctx context.Context, accessToken string) (service.CalendarClient, error) {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}),
			Base:   f.base,
		},
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if f.endpoint != "" {
		opts = append(opts, option.WithEndpoint(f.endpoint))
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create calendar service")
	}

	return &googleCalendarClient{svc: svc, logger: f.logger}, nil
}

type googleCalendarClient struct {
	svc    *gcal.Service
	logger *slog.Logger
}

func (c *googleCalendarClient) FindCalendarByName(ctx context.Context, name string) (string, bool, error) {
	var calendarID string

	errFound := errors.New("found")
	err := c.svc.CalendarList.List().Pages(ctx, func(page *gcal.CalendarList) error {
		for _, item := range page.Items {
			if item.Summary == name {
				calendarID = item.Id

				return errFound
			}
		}

		return nil
	})

	switch {
	case errors.Is(err, errFound):
		return calendarID, true, nil
	case err != nil:
		return "", false, mapProviderError(err)
	default:
		return "", false, nil
	}
}

func (c *googleCalendarClient) CreateCalendar(ctx context.Context, name, timeZone string) (string, error) {
	created, err := c.svc.Calendars.Insert(&gcal.Calendar{
		Summary:  name,
		TimeZone: timeZone,
	}).Context(ctx).Do()
	if err != nil {
		return "", mapProviderError(err)
	}

	c.logger.InfoContext(ctx, "Created dedicated calendar",
		slog.String("calendar_id", created.Id),
		slog.String("time_zone", timeZone),
	)

	return created.Id, nil
}

func (c *googleCalendarClient) InsertEvent(ctx context.Context, calendarID string, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	created, err := c.svc.Events.Insert(calendarID, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start:       toEventDateTime(event.Start, event.TimeZone, event.AllDay),
		End:         toEventDateTime(event.End, event.TimeZone, event.AllDay),
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	return fromGoogleEvent(created), nil
}

func (c *googleCalendarClient) ListEvents(ctx context.Context, calendarID string, query entity.EventQuery) ([]*entity.CalendarEvent, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(query.TimeMin.Format(time.RFC3339)).
		TimeMax(query.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy(orderByStartTime)
	if query.Query != "" {
		call = call.Q(query.Query)
	}

	var events []*entity.CalendarEvent
	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, item := range page.Items {
			events = append(events, fromGoogleEvent(item))
		}

		return nil
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	return events, nil
}

func (c *googleCalendarClient) PatchEvent(ctx context.Context, calendarID, eventID string, patch *entity.EventPatch) (*entity.CalendarEvent, error) {
	body := &gcal.Event{}

	if patch.Summary != nil {
		body.Summary = *patch.Summary
		body.ForceSendFields = append(body.ForceSendFields, "Summary")
	}
	if patch.Description != nil {
		body.Description = *patch.Description
		body.ForceSendFields = append(body.ForceSendFields, "Description")
	}
	if patch.Location != nil {
		body.Location = *patch.Location
		body.ForceSendFields = append(body.ForceSendFields, "Location")
	}
	if patch.Start != nil {
		body.Start = toEventDateTime(*patch.Start, patch.TimeZone, false)
	}
	if patch.End != nil {
		body.End = toEventDateTime(*patch.End, patch.TimeZone, false)
	}

	updated, err := c.svc.Events.Patch(calendarID, eventID, body).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	return fromGoogleEvent(updated), nil
}

func (c *googleCalendarClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return mapProviderError(err)
	}

	return nil
}

func toEventDateTime(t time.Time, timeZone string, allDay bool) *gcal.EventDateTime {
	if allDay {
		return &gcal.EventDateTime{Date: t.Format(allDayLayout), TimeZone: timeZone}
	}

	return &gcal.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: timeZone}
}

func fromGoogleEvent(ev *gcal.Event) *entity.CalendarEvent {
	event := &entity.CalendarEvent{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		HTMLLink:    ev.HtmlLink,
	}

	if ev.Start != nil {
		event.Start, event.AllDay = parseEventDateTime(ev.Start)
		event.TimeZone = ev.Start.TimeZone
	}
	if ev.End != nil {
		event.End, _ = parseEventDateTime(ev.End)
	}

	return event
}

// parseEventDateTime reads either a timed or an all-day boundary. Unparseable values yield the zero time.
func parseEventDateTime(dt *gcal.EventDateTime) (time.Time, bool) {
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)

		return t, false
	}

	loc := time.UTC
	if dt.TimeZone != "" {
		if l, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = l
		}
	}

	t, _ := time.ParseInLocation(allDayLayout, dt.Date, loc)

	return t, true
}

// mapProviderError turns API failures into domain errors. Rejected credentials are
// reported separately so callers can send the user back through consent.
func mapProviderError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || strings.Contains(apiErr.Message, invalidCredentialsText) {
			return domainerrors.ErrProviderAuth.WithDetails(apiErr.Message)
		}

		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.Code)
		}

		return domainerrors.ErrProviderError.WithDetails(message)
	}

	if strings.Contains(err.Error(), invalidCredentialsText) {
		return domainerrors.ErrProviderAuth.WithDetails(err.Error())
	}

	return domainerrors.ErrProviderError.WithDetails(err.Error())
}
