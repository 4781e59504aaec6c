package impl

import (
	"context"
	"strings"
	"time"

	"calbridge/config"
	"calbridge/internal/domain/entity"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/usecase"
)

const currentTimeLayout = "2006-01-02T15:04:05.000-07:00"

// timeService implements the TimeAssistantUsecase interface.
type timeService struct {
	defaultZone string
	now         func() time.Time
}

// NewTimeService is the constructor for timeService.
func NewTimeService(cfg *config.Config) usecase.TimeAssistantUsecase {
	zone := cfg.TimeAssistant.DefaultTimeZone
	if zone == "" {
		zone = config.DefaultTimeZone
	}

	return &timeService{defaultZone: zone, now: time.Now}
}

// CurrentTime returns the current time and weekday in timeZone, or the default zone when empty.
func (srv *timeService) CurrentTime(_ context.Context, timeZone string) (*entity.CurrentTime, error) {
	zone := strings.TrimSpace(timeZone)
	if zone == "" {
		zone = srv.defaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, domainerrors.ErrInvalidTimezone.WithDetails(zone)
	}

	now := srv.now().In(loc)

	return &entity.CurrentTime{
		CurrentTime: now.Format(currentTimeLayout),
		DayOfWeek:   now.Weekday().String(),
		TimeZone:    zone,
	}, nil
}
