//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/tests/common/dbtest"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	date string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	s := new(bookingSuite)
	s.ConfigOverride = func(cfg *config.Config) {
		cfg.Booking.SlotCapacity = 1
	}
	suite.Run(t, s)
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.date = time.Now().UTC().AddDate(0, 1, 0).Format(time.DateOnly)
}

func (s *bookingSuite) availableSlots(date string) resdto.AvailabilityResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?date="+date, nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var res resdto.AvailabilityResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return res
}

func (s *bookingSuite) bookingRequest(slot string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		Date:      s.date,
		Time:      slot,
		PartySize: 4,
		Name:      "Alice Smith",
		Email:     "alice@example.com",
		Phone:     "555-0101",
	}
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("空き枠を選んで予約し、予約番号で確認できる", func() {
		t := s.T()

		avail := s.availableSlots(s.date)
		require.False(t, avail.Blocked)
		require.NotEmpty(t, avail.Slots, "5枠以上は必ず残る")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest(avail.Slots[0]), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "/api/bookings/"+created.ID.String(), created.StatusURL)
		require.Equal(t, created.StatusURL, w.Header().Get("Location"))
		require.False(t, created.Reservation.CreatedAt.IsZero())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, created.StatusURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "alice@example.com")
		var got resdto.BookingStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "pending", got.Status)
		require.Equal(t, s.date, got.Date)
		require.Equal(t, avail.Slots[0], got.Time)
		require.Equal(t, "Alice Smith", got.Name)
	})

	s.Run("満席の枠は 409 で、空き枠一覧からも消える", func() {
		t := s.T()

		avail := s.availableSlots(s.date)
		slot := avail.Slots[0]
		dbtest.CreateTestReservation(t, s.DB, s.date, slot, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest(slot), "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		require.NotContains(t, s.availableSlots(s.date).Slots, slot)
	})

	s.Run("却下済みの予約は枠を占有しない", func() {
		t := s.T()

		slot := s.availableSlots(s.date).Slots[0]
		dbtest.CreateTestReservation(t, s.DB, s.date, slot, "rejected")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest(slot), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("休業日は予約できない", func() {
		t := s.T()

		slot := s.availableSlots(s.date).Slots[0]
		dbtest.SetBlockedDates(t, s.DB, s.date)

		avail := s.availableSlots(s.date)
		require.True(t, avail.Blocked)
		require.Empty(t, avail.Slots)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", s.bookingRequest(slot), "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("過去日は 422", func() {
		t := s.T()

		req := s.bookingRequest("17:00")
		req.Date = time.Now().UTC().AddDate(0, 0, -2).Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", req, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("存在しない予約番号は 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/00000000-0000-0000-0000-000000000000", nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestCalendar() {
	s.Run("休業日は選択不可として返る", func() {
		t := s.T()
		dbtest.SetBlockedDates(t, s.DB, s.date)
		month := s.date[:7]

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/calendar?month="+month, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cal resdto.CalendarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cal))
		require.Equal(t, month, cal.Month)

		var found bool
		for _, day := range cal.Days {
			if day.Date == s.date {
				found = true
				require.True(t, day.IsBlocked)
				require.True(t, day.Disabled)
			}
		}
		require.True(t, found, fmt.Sprintf("%s not in grid", s.date))
	})
}
