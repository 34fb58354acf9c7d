package shared

import (
	"context"
	"log/slog"
	"time"
)

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationConfirmed EventType = "reservation.confirmed"
	EventReservationRejected  EventType = "reservation.rejected"
	EventReservationUpdated   EventType = "reservation.updated"
	EventReservationDeleted   EventType = "reservation.deleted"
	EventBlockedDatesChanged  EventType = "blocked_dates.changed"
)

// Event is published after the transaction that produced it has committed.
type Event struct {
	Type       EventType `json:"type"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Publish sends event and only logs a failure. The mutation has already committed.
func Publish(ctx context.Context, p EventPublisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish event",
			"type", string(event.Type),
			"key", event.Key,
			"error", err.Error())
	}
}
