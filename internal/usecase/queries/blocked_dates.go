package queries

import (
	"context"

	"restaurant-booking/internal/pkg/errs"
)

//go:generate mockgen -source=blocked_dates.go -destination=../../../tests/mock/queries/blocked_dates.go -package=queriesmock

type BlockedDateQueries interface {
	// List returns blocked dates in chronological order.
	List(ctx context.Context) ([]string, error)
}

type blockedDateQueriesImpl struct {
	reader BlockedDateReader
}

func NewBlockedDateQueries(reader BlockedDateReader) BlockedDateQueries {
	return &blockedDateQueriesImpl{reader: reader}
}

func (q *blockedDateQueriesImpl) List(ctx context.Context) ([]string, error) {
	dates, err := q.reader.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return dates.List(), nil
}
