//go:build unit

package commands_test

import (
	"context"
	"testing"

	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/usecase/shared"
	sharedmock "restaurant-booking/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	blockedDates *sharedmock.MockBlockedDateRepository
	users        *sharedmock.MockUserRepository
	publisher    *sharedmock.MockEventPublisher
}

// newTxMocks runs every Within callback against the returned mocks.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		blockedDates: sharedmock.NewMockBlockedDateRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		publisher:    sharedmock.NewMockEventPublisher(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().BlockedDates().Return(m.blockedDates).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

func eventOfType(t shared.EventType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(shared.Event)
		return ok && e.Type == t
	})
}

// counterValue sums every series of the named counter.
func counterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
