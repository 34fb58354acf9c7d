package queries

import (
	"context"
	"strings"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

var ErrReservationNotFound = errs.ErrReservationNotFound

// StatusAll disables status filtering.
const StatusAll = "all"

type ReservationFilter struct {
	Status string
	Search string
}

// Matches applies the dashboard predicate: status equality unless "all", and the search
// term as a case-insensitive substring of name or email or a raw substring of phone.
func (f ReservationFilter) Matches(v *ReservationView) bool {
	if f.Status != "" && f.Status != StatusAll && v.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.Email), term) ||
		strings.Contains(v.Phone, f.Search)
}

// FilterReservations keeps the relative order of list.
func FilterReservations(list []*ReservationView, f ReservationFilter) []*ReservationView {
	out := make([]*ReservationView, 0, len(list))
	for _, v := range list {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

func Summarize(list []*ReservationView) ReservationStats {
	stats := ReservationStats{Total: len(list)}
	for _, v := range list {
		switch reservation.Status(v.Status) {
		case reservation.StatusPending:
			stats.Pending++
		case reservation.StatusConfirmed:
			stats.Confirmed++
		case reservation.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) (*ReservationList, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// FindAll returns every reservation, newest first.
	FindAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) (*ReservationList, error) {
	all, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ReservationList{
		Items: FilterReservations(all, filter),
		Stats: Summarize(all),
	}, nil
}
