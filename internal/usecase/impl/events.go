package impl

import (
	"context"
	"log/slog"

	deliverycontext "calbridge/internal/delivery/context"
	"calbridge/internal/domain/service"
)

// publishSessionEvent stamps the request id and publishes. Publishing never fails the caller.
func publishSessionEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.SessionEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishSessionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish session event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishSessionEvent(context.Context, *service.SessionEvent) error { return nil }
func (nopPublisher) Close() error                                                     { return nil }

type nopMetrics struct{}

func (nopMetrics) RefreshObserved(string)           {}
func (nopMetrics) StoreFailed(string)               {}
func (nopMetrics) OperationObserved(string, string) {}

func publisherOrNop(p service.EventPublisher) service.EventPublisher {
	if p == nil {
		return nopPublisher{}
	}

	return p
}

func metricsOrNop(m service.BrokerMetrics) service.BrokerMetrics {
	if m == nil {
		return nopMetrics{}
	}

	return m
}
