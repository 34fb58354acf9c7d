package commands

import (
	"context"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrInvalidTransition   = errs.ErrInvalidTransition
	ErrDeleteNotConfirmed  = errs.ErrDeleteNotConfirmed
)

type AdminCommands interface {
	Approve(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Reject(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Edit(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
	// Delete needs confirm to repeat the id being deleted.
	Delete(ctx context.Context, id uuid.UUID, confirm string) error
	// ToggleBlockedDates flips every date in one transaction and returns the new list.
	ToggleBlockedDates(ctx context.Context, dates []string) ([]string, error)
	UnblockDate(ctx context.Context, date string) ([]string, error)
}

type adminCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	metrics   *metrics.Metrics
	clock     clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, m *metrics.Metrics, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		uow:       uow,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
	}
}

func (a *adminCommandsImpl) Approve(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return a.decide(ctx, id, reservation.StatusConfirmed, shared.EventReservationConfirmed)
}

func (a *adminCommandsImpl) Reject(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return a.decide(ctx, id, reservation.StatusRejected, shared.EventReservationRejected)
}

func (a *adminCommandsImpl) decide(ctx context.Context, id uuid.UUID, next reservation.Status, eventType shared.EventType) (*queries.ReservationView, error) {
	var res *reservation.Reservation
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := res.Decide(next); err != nil {
			return err
		}
		return tx.Reservations().UpdateStatus(ctx, id, next)
	})
	if err != nil {
		return nil, mapReservationErr(err)
	}

	view := toView(res)
	a.metrics.StatusChanged(next.String())
	a.publish(ctx, eventType, view.ID, view)
	return view, nil
}

func (a *adminCommandsImpl) Edit(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
	var updated *reservation.Reservation
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		updated, err = req.ToDomain(toView(current))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Reservations().Update(ctx, updated)
	})
	if err != nil {
		return nil, mapReservationErr(err)
	}

	view := toView(updated)
	a.publish(ctx, shared.EventReservationUpdated, view.ID, view)
	return view, nil
}

func (a *adminCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirm string) error {
	if confirm != id.String() {
		return ErrDeleteNotConfirmed
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	})
	if err != nil {
		return mapReservationErr(err)
	}

	a.publish(ctx, shared.EventReservationDeleted, id, map[string]string{"id": id.String()})
	return nil
}

func (a *adminCommandsImpl) ToggleBlockedDates(ctx context.Context, dates []string) ([]string, error) {
	normalized := make([]string, 0, len(dates))
	for _, d := range dates {
		date, err := reservation.NewDate(d)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		normalized = append(normalized, date.String())
	}
	return a.changeBlockedDates(ctx, func(current blocking.Dates) blocking.Dates {
		return current.ToggleAll(normalized)
	})
}

func (a *adminCommandsImpl) UnblockDate(ctx context.Context, date string) ([]string, error) {
	d, err := reservation.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return a.changeBlockedDates(ctx, func(current blocking.Dates) blocking.Dates {
		return current.Remove(d.String())
	})
}

// changeBlockedDates is one locked read-modify-write over the whole set.
func (a *adminCommandsImpl) changeBlockedDates(ctx context.Context, change func(blocking.Dates) blocking.Dates) ([]string, error) {
	var next blocking.Dates
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.BlockedDates().LoadForUpdate(ctx)
		if err != nil {
			return err
		}
		next = change(current)
		return tx.BlockedDates().Save(ctx, next)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	list := next.List()
	shared.Publish(ctx, a.publisher, shared.Event{
		Type:       shared.EventBlockedDatesChanged,
		Key:        "blockedDates",
		Payload:    map[string][]string{"dates": list},
		OccurredAt: a.clock.Now(),
	})
	return list, nil
}

func (a *adminCommandsImpl) publish(ctx context.Context, t shared.EventType, id uuid.UUID, payload any) {
	shared.Publish(ctx, a.publisher, shared.Event{
		Type:       t,
		Key:        id.String(),
		Payload:    payload,
		OccurredAt: a.clock.Now(),
	})
}

func mapReservationErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReservationNotFound
	case infra.IsKind(err, infra.KindConflict), errs.Is(err, reservation.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errs.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
