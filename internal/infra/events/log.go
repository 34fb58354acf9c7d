package events

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/usecase/shared"
)

// LogPublisher is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.Event) error {
	p.logger.InfoContext(ctx, "event published",
		"type", string(event.Type),
		"key", event.Key,
		"occurred_at", event.OccurredAt)
	return nil
}
