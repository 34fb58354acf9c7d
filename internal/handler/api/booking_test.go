//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"restaurant-booking/internal/domain/calendar"
	"restaurant-booking/internal/handler/api"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/common/testutil"
	commandsmock "restaurant-booking/tests/mock/commands"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockAvail    *queriesmock.MockAvailabilityQueries
	mockCalendar *queriesmock.MockCalendarQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAvail = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockCalendar = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvail, s.mockCalendar)

	s.router.POST("/api/bookings", h.Create)
	s.router.GET("/api/bookings/:id", h.Get)
	s.router.GET("/api/availability", h.Availability)
	s.router.GET("/api/calendar", h.Calendar)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewReservationBuilder().WithPartySize(4)
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildView()

	s.Run("正常系: 201 と予約番号、Location ヘッダー", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("/api/bookings/"+created.ID.String(), response.StatusURL)
		s.Equal(4, response.Reservation.PartySize)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": response.StatusURL})
	})

	s.Run("異常系: 入力検証で 400", func() {
		cases := []testCaseBooking{
			{name: "人数1はOK", mutate: testutil.Field("party_size", 1), expectCode: http.StatusCreated},
			{name: "人数12はOK", mutate: testutil.Field("party_size", 12), expectCode: http.StatusCreated},
			{name: "メールなしはOK", mutate: testutil.Field("email", nil), expectCode: http.StatusCreated},
			{name: "人数0", mutate: testutil.Field("party_size", 0), expectCode: http.StatusBadRequest},
			{name: "人数13", mutate: testutil.Field("party_size", 13), expectCode: http.StatusBadRequest},
			{name: "名前なし", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "電話番号なし", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
			{name: "日付の形式違い", mutate: testutil.Field("date", "07/04/2024"), expectCode: http.StatusBadRequest},
			{name: "存在しない日付", mutate: testutil.Field("date", "2024-02-30"), expectCode: http.StatusBadRequest},
			{name: "規定外の時刻", mutate: testutil.Field("time", "16:30"), expectCode: http.StatusBadRequest},
			{name: "不正なメール", mutate: testutil.Field("email", "guest-at-example"), expectCode: http.StatusBadRequest},
			{name: "長すぎる名前", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(created, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("異常系: ユースケースのエラーをステータスに変換", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"ブロック日", commands.ErrDateBlocked, http.StatusConflict, "not accepting bookings"},
			{"提供外の枠", commands.ErrSlotUnavailable, http.StatusConflict, "not available"},
			{"満席", commands.ErrSlotFull, http.StatusConflict, "fully booked"},
			{"検証エラー", errs.Mark(errors.New("date is in the past"), commands.ErrDomainValidation), http.StatusUnprocessableEntity, "Validation failed"},
			{"DB障害", errs.Mark(errors.New("connection refused"), commands.ErrDatabaseOperationFailed), http.StatusServiceUnavailable, "please retry"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().WithStatus("confirmed").BuildView()

	s.Run("正常系", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
		s.Equal(view.Name, response.Name)
		s.Equal(view.Date, response.Date)
		s.Equal(view.Time, response.Time)
		s.Equal(view.PartySize, response.PartySize)
	})

	s.Run("連絡先は匿名の照会に返さない", func() {
		view := builder.NewReservationBuilder().
			WithEmail("alice@private.example").WithPhone("555-0199").BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.NotContains(body, "email")
		s.NotContains(body, "phone")
		s.NotContains(body, "created_at")
		s.NotContains(rec.Body.String(), "alice@private.example")
		s.NotContains(rec.Body.String(), "555-0199")
	})

	s.Run("存在しない予約は 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("不正な予約番号も 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-reference", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *BookingHandlerTestSuite) TestAvailability() {
	s.Run("正常系", func() {
		s.mockAvail.EXPECT().SlotsForDate(gomock.Any(), "2024-07-04").Return(&queries.AvailabilityView{
			Date:  "2024-07-04",
			Slots: []string{"17:00", "17:30", "18:30", "19:00", "20:00", "20:30"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2024-07-04", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Slots, 6)
		s.False(response.Blocked)
	})

	s.Run("ブロック日は空配列", func() {
		s.mockAvail.EXPECT().SlotsForDate(gomock.Any(), "2024-07-04").Return(&queries.AvailabilityView{
			Date: "2024-07-04", Blocked: true, Slots: []string{},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2024-07-04", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	s.Run("日付なしは 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestCalendar() {
	grid := calendar.MonthGrid(2024, time.July, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), nil, calendar.ModeSingle)

	s.Run("月指定", func() {
		s.mockCalendar.EXPECT().CurrentMonth().Return(2024, time.June)
		s.mockCalendar.EXPECT().Month(gomock.Any(), 2024, time.July, calendar.ModeSingle).Return(grid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?month=2024-07", nil, "")

		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2024-07", response.Month)
		s.Equal(1, response.LeadingBlanks)
		s.Len(response.Days, 31)
		s.True(response.Days[0].Disabled)
		s.True(response.Days[9].IsToday)
	})

	s.Run("省略時は今月", func() {
		s.mockCalendar.EXPECT().CurrentMonth().Return(2024, time.July)
		s.mockCalendar.EXPECT().Month(gomock.Any(), 2024, time.July, calendar.ModeSingle).Return(grid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("形式違いは 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?month=2024-13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
