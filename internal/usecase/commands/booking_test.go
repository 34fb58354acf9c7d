//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/shared"
	"restaurant-booking/tests/common/builder"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mocks   *txMocks
	blocked *queriesmock.MockBlockedDateReader
	metrics *metrics.Metrics
	clock   *clock.MockClock
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mocks = newTxMocks(s.ctrl)
	s.blocked = queriesmock.NewMockBlockedDateReader(s.ctrl)
	s.metrics = metrics.New()
	s.clock = clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) newCommands(capacity int) commands.BookingCommands {
	return commands.NewBookingCommands(s.mocks.uow, s.blocked, s.mocks.publisher, s.metrics, s.clock,
		commands.BookingConfig{SlotCapacity: capacity, Location: time.UTC})
}

func (s *BookingCommandsTestSuite) expectStored(id uuid.UUID) {
	s.mocks.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
			res.Stored(id, s.clock.Now())
			return nil
		})
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("正常系: 受付可能な枠は pending で保存される", func() {
		id := uuid.New()
		req := builder.NewReservationBuilder().WithTime("17:00").BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
		s.expectStored(id)
		s.mocks.publisher.EXPECT().Publish(gomock.Any(), eventOfType(shared.EventReservationCreated)).Return(nil)

		view, err := s.newCommands(0).CreateBooking(ctx, req)

		s.Require().NoError(err)
		s.Equal(id, view.ID)
		s.Equal("pending", view.Status)
		s.Equal(req.Date, view.Date)
		s.Equal(req.Time, view.Time)
		s.Equal(req.PartySize, view.PartySize)
		s.False(view.CreatedAt.IsZero())
	})

	s.Run("正常系: イベント送信の失敗は予約を失敗させない", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
		s.expectStored(uuid.New())
		s.mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := s.newCommands(0).CreateBooking(ctx, req)
		s.NoError(err)
	})

	s.Run("異常系: 入力検証エラー", func() {
		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
		}{
			{"名前が空", func(b *builder.ReservationBuilder) { b.Name = "  " }},
			{"電話番号が空", func(b *builder.ReservationBuilder) { b.Phone = "" }},
			{"人数0", func(b *builder.ReservationBuilder) { b.PartySize = 0 }},
			{"人数13", func(b *builder.ReservationBuilder) { b.PartySize = 13 }},
			{"不正な日付", func(b *builder.ReservationBuilder) { b.Date = "2024-02-30" }},
			{"規定外の時刻", func(b *builder.ReservationBuilder) { b.Time = "17:15" }},
			{"不正なメール", func(b *builder.ReservationBuilder) { b.Email = "not-an-email" }},
			{"過去の日付", func(b *builder.ReservationBuilder) { b.Date = "2024-06-30" }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := builder.NewReservationBuilder().With(tc.mutate).BuildCreateRequestDTO()
				_, err := s.newCommands(0).CreateBooking(ctx, req)
				s.True(errs.Is(err, commands.ErrDomainValidation), "got %v", err)
			})
		}
	})

	s.Run("異常系: ブロック日は受け付けない", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(req.Date), nil)

		_, err := s.newCommands(0).CreateBooking(ctx, req)
		s.ErrorIs(err, commands.ErrDateBlocked)
	})

	s.Run("異常系: 提供されていない枠は受け付けない", func() {
		// 2024-07-04 hides 18:00, 19:30 and 21:00
		req := builder.NewReservationBuilder().WithTime("19:30").BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)

		_, err := s.newCommands(0).CreateBooking(ctx, req)
		s.ErrorIs(err, commands.ErrSlotUnavailable)
	})

	s.Run("異常系: ブロック日の取得失敗", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.Dates{}, errors.New("connection refused"))

		_, err := s.newCommands(0).CreateBooking(ctx, req)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	s.Run("異常系: 保存失敗", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
		s.mocks.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := s.newCommands(0).CreateBooking(ctx, req)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_SlotCapacity() {
	ctx := context.Background()
	req := builder.NewReservationBuilder().WithTime("17:00").BuildCreateRequestDTO()

	s.Run("空きがあれば枠をロックしてから保存する", func() {
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
		gomock.InOrder(
			s.mocks.reservations.EXPECT().LockSlot(gomock.Any(), req.Date, req.Time).Return(nil),
			s.mocks.reservations.EXPECT().CountActiveInSlot(gomock.Any(), req.Date, req.Time).Return(1, nil),
		)
		s.expectStored(uuid.New())
		s.mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.newCommands(2).CreateBooking(ctx, req)
		s.NoError(err)
	})

	s.Run("満席なら ErrSlotFull", func() {
		s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
		s.mocks.reservations.EXPECT().LockSlot(gomock.Any(), req.Date, req.Time).Return(nil)
		s.mocks.reservations.EXPECT().CountActiveInSlot(gomock.Any(), req.Date, req.Time).Return(2, nil)

		_, err := s.newCommands(2).CreateBooking(ctx, req)
		s.ErrorIs(err, commands.ErrSlotFull)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Metrics() {
	req := builder.NewReservationBuilder().BuildCreateRequestDTO()
	s.blocked.EXPECT().Get(gomock.Any()).Return(blocking.NewDates(), nil)
	s.expectStored(uuid.New())
	s.mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.newCommands(0).CreateBooking(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(1.0, counterValue(s.T(), s.metrics, "bookings_created_total"))
}
