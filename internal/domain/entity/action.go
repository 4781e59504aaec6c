package entity

import "time"

// Action names accepted by the operation runner.
const (
	ActionAdd    = "add"
	ActionList   = "list"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActionRequest is a single calendar operation as sent by the client.
type ActionRequest struct {
	Action        string        `json:"action"`
	EventSummary  string        `json:"eventSummary,omitempty"`
	EventDetails  string        `json:"eventDetails,omitempty"`
	Location      string        `json:"location,omitempty"`
	StartDateTime string        `json:"startDateTime,omitempty"`
	EndDateTime   string        `json:"endDateTime,omitempty"`
	EventID       string        `json:"eventId,omitempty"`
	UpdateFields  *UpdateFields `json:"updateFields,omitempty"`
	Query         string        `json:"q,omitempty"`
	TimeMin       string        `json:"timeMin,omitempty"`
	TimeMax       string        `json:"timeMax,omitempty"`
	TimeZone      string        `json:"timeZone,omitempty"`
}

// UpdateFields lists the event attributes an update may change. Nil means untouched.
type UpdateFields struct {
	Summary       *string `json:"summary,omitempty"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	StartDateTime *string `json:"startDateTime,omitempty"`
	EndDateTime   *string `json:"endDateTime,omitempty"`
}

// IsEmpty reports whether no field is set.
func (f *UpdateFields) IsEmpty() bool {
	return f == nil ||
		(f.Summary == nil && f.Description == nil && f.Location == nil &&
			f.StartDateTime == nil && f.EndDateTime == nil)
}

// CalendarEvent is the provider-neutral view of an event.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"-"`
	End         time.Time `json:"-"`
	TimeZone    string    `json:"timeZone,omitempty"`
	AllDay      bool      `json:"allDay,omitempty"`
	HTMLLink    string    `json:"htmlLink,omitempty"`
}

// EventPatch carries the fields of an update, already parsed.
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Start       *time.Time
	End         *time.Time
	TimeZone    string
}

// EventQuery bounds a list call.
type EventQuery struct {
	TimeMin time.Time
	TimeMax time.Time
	Query   string
}

// ActionResultKind tags an ActionResult.
type ActionResultKind string

const (
	ResultAdded    ActionResultKind = "added"
	ResultListed   ActionResultKind = "listed"
	ResultNoEvents ActionResultKind = "no_events"
	ResultUpdated  ActionResultKind = "updated"
	ResultDeleted  ActionResultKind = "deleted"
	ResultGuidance ActionResultKind = "guidance"
)

// Messages carried by the non-event results.
const (
	NoEventsMessage       = "No upcoming events found."
	DeleteGuidanceMessage = "Please provide the title or the id of the event you want to delete."
	DeletedMessage        = "Event deleted."
)

// EventView is a CalendarEvent rendered for the client, with times in the event's own zone.
type EventView struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TimeZone    string `json:"timeZone,omitempty"`
	HTMLLink    string `json:"htmlLink,omitempty"`
}

// ActionResult is the outcome of a runner action.
type ActionResult struct {
	Kind    ActionResultKind `json:"kind"`
	Event   *EventView       `json:"event,omitempty"`
	Events  []EventView      `json:"events,omitempty"`
	Message string           `json:"message,omitempty"`
}

// OperationOutcome is what the exposed calendar operation returns when it does not fail:
// either a result or an authorization URL the user must visit.
type OperationOutcome struct {
	Result  *ActionResult
	AuthURL string
}

// NeedsAuth reports whether the outcome is an authorization redirect.
func (o *OperationOutcome) NeedsAuth() bool {
	return o != nil && o.AuthURL != ""
}

// CurrentTime is the time assistant's answer.
type CurrentTime struct {
	CurrentTime string `json:"currentTime"`
	DayOfWeek   string `json:"dayOfWeek"`
	TimeZone    string `json:"timeZone"`
}
