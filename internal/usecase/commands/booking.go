package commands

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/availability"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var (
	ErrDateBlocked             = errs.ErrDateBlocked
	ErrSlotUnavailable         = errs.ErrSlotUnavailable
	ErrSlotFull                = errs.ErrSlotFull
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.ReservationView, error)
}

type BookingConfig struct {
	// SlotCapacity caps non-rejected reservations per date and slot. 0 disables the cap.
	SlotCapacity int
	Location     *time.Location
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	blocked   queries.BlockedDateReader
	publisher shared.EventPublisher
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	blocked queries.BlockedDateReader,
	publisher shared.EventPublisher,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg BookingConfig,
) BookingCommands {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &bookingCommandsImpl{
		uow:       uow,
		blocked:   blocked,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.ReservationView, error) {
	res, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := res.Date().NotBefore(clock.Today(b.clock, b.cfg.Location)); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	date, slot := res.Date().String(), res.Slot().String()

	blocked, err := b.blocked.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if blocked.Contains(date) {
		return nil, ErrDateBlocked
	}
	if !availability.Offers(date, slot, blocked) {
		return nil, ErrSlotUnavailable
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if b.cfg.SlotCapacity > 0 {
			if err := tx.Reservations().LockSlot(ctx, date, slot); err != nil {
				return err
			}
			taken, err := tx.Reservations().CountActiveInSlot(ctx, date, slot)
			if err != nil {
				return err
			}
			if taken >= b.cfg.SlotCapacity {
				return ErrSlotFull
			}
		}
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		if errs.Is(err, ErrSlotFull) {
			return nil, ErrSlotFull
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := toView(res)
	b.metrics.BookingCreated()
	shared.Publish(ctx, b.publisher, shared.Event{
		Type:       shared.EventReservationCreated,
		Key:        view.ID.String(),
		Payload:    view,
		OccurredAt: b.clock.Now(),
	})
	return view, nil
}
