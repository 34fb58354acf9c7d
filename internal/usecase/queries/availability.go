package queries

import (
	"context"

	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

type BlockedDateReader interface {
	Get(ctx context.Context) (blocking.Dates, error)
}

type SlotOccupancyReader interface {
	// CountActiveByDate returns non-rejected reservations per slot on date.
	CountActiveByDate(ctx context.Context, date string) (map[string]int, error)
}

// AvailabilityReaders binds both readers to the transaction a query runs in.
type AvailabilityReaders func(dbtx db.DBTX) (BlockedDateReader, SlotOccupancyReader)

type AvailabilityQueries interface {
	SlotsForDate(ctx context.Context, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow          shared.UnitOfWork
	readers      AvailabilityReaders
	slotCapacity int
}

// NewAvailabilityQueries: slotCapacity 0 means slots never fill up.
func NewAvailabilityQueries(uow shared.UnitOfWork, readers AvailabilityReaders, slotCapacity int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:          uow,
		readers:      readers,
		slotCapacity: slotCapacity,
	}
}

// SlotsForDate reads the blocked dates and the slot counts from one snapshot, so a
// date blocked between the two reads cannot show up as open.
func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, date string) (*AvailabilityView, error) {
	if _, err := reservation.NewDate(date); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		blocked, occupancy := q.readers(dbtx)

		dates, err := blocked.Get(ctx)
		if err != nil {
			return err
		}

		view = &AvailabilityView{
			Date:    date,
			Blocked: dates.Contains(date),
			Slots:   availability.AvailableSlots(date, dates),
		}
		if view.Blocked || q.slotCapacity == 0 {
			return nil
		}

		counts, err := occupancy.CountActiveByDate(ctx, date)
		if err != nil {
			return err
		}

		open := make([]string, 0, len(view.Slots))
		for _, s := range view.Slots {
			if counts[s] < q.slotCapacity {
				open = append(open, s)
			}
		}
		view.Slots = open
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
