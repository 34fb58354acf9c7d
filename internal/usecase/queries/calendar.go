package queries

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/calendar"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar.go -package=queriesmock

type CalendarQueries interface {
	Month(ctx context.Context, year int, month time.Month, mode calendar.Mode) (calendar.Month, error)
	// CurrentMonth is the month containing today in the restaurant's time zone.
	CurrentMonth() (int, time.Month)
}

type calendarQueriesImpl struct {
	reader BlockedDateReader
	clock  clock.Clock
	loc    *time.Location
}

func NewCalendarQueries(reader BlockedDateReader, clk clock.Clock, loc *time.Location) CalendarQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarQueriesImpl{reader: reader, clock: clk, loc: loc}
}

func (q *calendarQueriesImpl) Month(ctx context.Context, year int, month time.Month, mode calendar.Mode) (calendar.Month, error) {
	dates, err := q.reader.Get(ctx)
	if err != nil {
		return calendar.Month{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	today := clock.Today(q.clock, q.loc)
	return calendar.MonthGrid(year, month, today, dates, mode), nil
}

func (q *calendarQueriesImpl) CurrentMonth() (int, time.Month) {
	today := clock.Today(q.clock, q.loc)
	return today.Year(), today.Month()
}
