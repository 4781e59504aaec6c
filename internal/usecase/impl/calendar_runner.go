package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"calbridge/config"
	deliverycontext "calbridge/internal/delivery/context"
	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"
	"calbridge/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultEventDuration = 2 * time.Hour
	allDayDuration       = 24 * time.Hour
	dateOnlyLayout       = "2006-01-02"
)

// Operation outcomes reported through BrokerMetrics.OperationObserved.
const (
	outcomeOK           = "ok"
	outcomeInvalid      = "invalid"
	outcomeGuidance     = "guidance"
	outcomeProviderAuth = "provider_auth"
	outcomeProviderErr  = "provider_error"
)

// Layouts accepted for event times, most specific first. Only RFC 3339 carries an offset.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	dateOnlyLayout,
}

// calendarRunner implements the CalendarRunner interface.
type calendarRunner struct {
	clients      service.CalendarClientFactory
	metrics      service.BrokerMetrics
	calendarName string
	timeZone     string
	logger       *slog.Logger
	now          func() time.Time
}

// CalendarRunnerParams holds dependencies for CalendarRunner, injected by Fx.
type CalendarRunnerParams struct {
	fx.In

	Clients service.CalendarClientFactory
	Metrics service.BrokerMetrics `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCalendarRunner is the constructor for calendarRunner.
func NewCalendarRunner(params CalendarRunnerParams) usecase.CalendarRunner {
	name := params.Config.Calendar.Name
	if name == "" {
		name = config.DefaultCalendarName
	}

	timeZone := params.Config.Calendar.TimeZone
	if timeZone == "" {
		timeZone = config.DefaultTimeZone
	}

	return &calendarRunner{
		clients:      params.Clients,
		metrics:      metricsOrNop(params.Metrics),
		calendarName: name,
		timeZone:     timeZone,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *calendarRunner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// calendarCall runs against the resolved dedicated calendar.
type calendarCall func(ctx context.Context, client service.CalendarClient, calendarID string) (*entity.ActionResult, error)

// Run validates req, then dispatches it against the dedicated calendar.
// Malformed requests are rejected before any provider call.
func (srv *calendarRunner) Run(ctx context.Context, accessToken string, req *entity.ActionRequest) (*entity.ActionResult, error) {
	if req == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("request is required")
	}

	call, result, err := srv.plan(req)
	if err != nil {
		srv.metrics.OperationObserved(req.Action, outcomeInvalid)

		return nil, err
	}
	if result != nil {
		srv.metrics.OperationObserved(req.Action, outcomeGuidance)

		return result, nil
	}

	result, err = srv.execute(ctx, accessToken, call)
	if err != nil {
		outcome := outcomeProviderErr
		if errors.Is(err, domainerrors.ErrProviderAuth) {
			outcome = outcomeProviderAuth
		}
		srv.metrics.OperationObserved(req.Action, outcome)
		srv.log(ctx).Warn("Calendar operation failed",
			slog.String("action", req.Action),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.OperationObserved(req.Action, outcomeOK)

	return result, nil
}

// plan validates req and returns either the provider call to make or a result that needs none.
func (srv *calendarRunner) plan(req *entity.ActionRequest) (calendarCall, *entity.ActionResult, error) {
	zoneName, loc, err := srv.location(req.TimeZone)
	if err != nil {
		return nil, nil, err
	}

	switch req.Action {
	case entity.ActionAdd:
		event, err := srv.newEvent(req, zoneName, loc)
		if err != nil {
			return nil, nil, err
		}

		return func(ctx context.Context, client service.CalendarClient, calendarID string) (*entity.ActionResult, error) {
			created, err := client.InsertEvent(ctx, calendarID, event)
			if err != nil {
				return nil, err
			}

			view := srv.view(created)

			return &entity.ActionResult{Kind: entity.ResultAdded, Event: &view}, nil
		}, nil, nil

	case entity.ActionList:
		query, err := srv.newQuery(req, loc)
		if err != nil {
			return nil, nil, err
		}

		return func(ctx context.Context, client service.CalendarClient, calendarID string) (*entity.ActionResult, error) {
			events, err := client.ListEvents(ctx, calendarID, query)
			if err != nil {
				return nil, err
			}

			if len(events) == 0 {
				return &entity.ActionResult{Kind: entity.ResultNoEvents, Message: entity.NoEventsMessage}, nil
			}

			views := make([]entity.EventView, 0, len(events))
			for _, event := range events {
				views = append(views, srv.view(event))
			}

			return &entity.ActionResult{Kind: entity.ResultListed, Events: views}, nil
		}, nil, nil

	case entity.ActionUpdate:
		if req.EventID == "" || req.UpdateFields.IsEmpty() {
			return nil, nil, domainerrors.ErrInvalidArgument.WithDetails("eventId and updateFields are required for update")
		}

		patch, err := newPatch(req.UpdateFields, zoneName, loc)
		if err != nil {
			return nil, nil, err
		}

		return func(ctx context.Context, client service.CalendarClient, calendarID string) (*entity.ActionResult, error) {
			updated, err := client.PatchEvent(ctx, calendarID, req.EventID, patch)
			if err != nil {
				return nil, err
			}

			view := srv.view(updated)

			return &entity.ActionResult{Kind: entity.ResultUpdated, Event: &view}, nil
		}, nil, nil

	case entity.ActionDelete:
		if req.EventID == "" {
			return nil, &entity.ActionResult{Kind: entity.ResultGuidance, Message: entity.DeleteGuidanceMessage}, nil
		}

		return func(ctx context.Context, client service.CalendarClient, calendarID string) (*entity.ActionResult, error) {
			if err := client.DeleteEvent(ctx, calendarID, req.EventID); err != nil {
				return nil, err
			}

			return &entity.ActionResult{Kind: entity.ResultDeleted, Message: entity.DeletedMessage}, nil
		}, nil, nil

	default:
		return nil, nil, domainerrors.ErrInvalidAction.WithDetails("unsupported action: " + req.Action)
	}
}

func (srv *calendarRunner) execute(ctx context.Context, accessToken string, call calendarCall) (*entity.ActionResult, error) {
	client, err := srv.clients.ForAccessToken(ctx, accessToken)
	if err != nil {
		return nil, domainerrors.ErrProviderError.WithDetails(err.Error())
	}

	calendarID, err := srv.resolveCalendar(ctx, client)
	if err != nil {
		return nil, err
	}

	return call(ctx, client, calendarID)
}

// resolveCalendar finds the dedicated calendar by name, creating it on first use.
func (srv *calendarRunner) resolveCalendar(ctx context.Context, client service.CalendarClient) (string, error) {
	calendarID, found, err := client.FindCalendarByName(ctx, srv.calendarName)
	if err != nil {
		return "", err
	}
	if found {
		return calendarID, nil
	}

	calendarID, err = client.CreateCalendar(ctx, srv.calendarName, srv.timeZone)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Dedicated calendar created",
		slog.String("calendar_name", srv.calendarName),
		slog.String("calendar_id", calendarID),
	)

	return calendarID, nil
}

func (srv *calendarRunner) newEvent(req *entity.ActionRequest, zoneName string, loc *time.Location) (*entity.CalendarEvent, error) {
	start := srv.now().In(loc)
	allDay := false

	if req.StartDateTime != "" {
		parsed, dateOnly, err := parseEventTime(req.StartDateTime, loc)
		if err != nil {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("startDateTime: " + err.Error())
		}
		start, allDay = parsed, dateOnly
	}

	end := start.Add(defaultEventDuration)
	if allDay {
		end = start.Add(allDayDuration)
	}

	if req.EndDateTime != "" {
		parsed, _, err := parseEventTime(req.EndDateTime, loc)
		if err != nil {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("endDateTime: " + err.Error())
		}
		end = parsed
	}

	return &entity.CalendarEvent{
		Summary:     req.EventSummary,
		Description: req.EventDetails,
		Location:    req.Location,
		Start:       start,
		End:         end,
		TimeZone:    zoneName,
		AllDay:      allDay,
	}, nil
}

func (srv *calendarRunner) newQuery(req *entity.ActionRequest, loc *time.Location) (entity.EventQuery, error) {
	query := entity.EventQuery{
		TimeMin: srv.now().In(loc),
		Query:   strings.TrimSpace(req.Query),
	}
	query.TimeMax = query.TimeMin.AddDate(1, 0, 0)

	if req.TimeMin != "" {
		parsed, _, err := parseEventTime(req.TimeMin, loc)
		if err != nil {
			return entity.EventQuery{}, domainerrors.ErrInvalidArgument.WithDetails("timeMin: " + err.Error())
		}
		query.TimeMin = parsed
	}

	if req.TimeMax != "" {
		parsed, _, err := parseEventTime(req.TimeMax, loc)
		if err != nil {
			return entity.EventQuery{}, domainerrors.ErrInvalidArgument.WithDetails("timeMax: " + err.Error())
		}
		query.TimeMax = parsed
	}

	return query, nil
}

func newPatch(fields *entity.UpdateFields, zoneName string, loc *time.Location) (*entity.EventPatch, error) {
	patch := &entity.EventPatch{
		Summary:     fields.Summary,
		Description: fields.Description,
		Location:    fields.Location,
	}

	if fields.StartDateTime != nil {
		start, _, err := parseEventTime(*fields.StartDateTime, loc)
		if err != nil {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("updateFields.startDateTime: " + err.Error())
		}
		patch.Start = &start
		patch.TimeZone = zoneName
	}

	if fields.EndDateTime != nil {
		end, _, err := parseEventTime(*fields.EndDateTime, loc)
		if err != nil {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("updateFields.endDateTime: " + err.Error())
		}
		patch.End = &end
		patch.TimeZone = zoneName
	}

	return patch, nil
}

// location resolves the request zone, falling back to the calendar's.
func (srv *calendarRunner) location(requested string) (string, *time.Location, error) {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = srv.timeZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", nil, domainerrors.ErrInvalidTimezone.WithDetails(name)
	}

	return name, loc, nil
}

// view renders an event with its times in the event's own zone.
func (srv *calendarRunner) view(event *entity.CalendarEvent) entity.EventView {
	view := entity.EventView{
		ID:          event.ID,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		TimeZone:    event.TimeZone,
		HTMLLink:    event.HTMLLink,
	}

	if event.AllDay {
		view.Start = event.Start.Format(dateOnlyLayout)
		view.End = event.End.Format(dateOnlyLayout)

		return view
	}

	loc := time.UTC
	zone := event.TimeZone
	if zone == "" {
		zone = srv.timeZone
	}
	if l, err := time.LoadLocation(zone); err == nil {
		loc = l
	}

	view.Start = event.Start.In(loc).Format(time.RFC3339)
	view.End = event.End.In(loc).Format(time.RFC3339)

	return view
}

// parseEventTime accepts the layouts in eventTimeLayouts. Values without an offset are read in loc.
// dateOnly reports a bare calendar date.
func parseEventTime(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)

	for _, layout := range eventTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, false, nil
			}

			continue
		}

		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, layout == dateOnlyLayout, nil
		}
	}

	return time.Time{}, false, errors.Errorf("unrecognised time %q", value)
}
