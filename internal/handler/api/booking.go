package api

import (
	"net/http"

	"restaurant-booking/internal/domain/calendar"
	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingPath is where a created booking can be re-checked.
const BookingPath = "/api/bookings/"

type BookingHandler struct {
	cmds         commands.BookingCommands
	reservations queries.ReservationQueries
	availability queries.AvailabilityQueries
	calendar     queries.CalendarQueries
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	reservations queries.ReservationQueries,
	availability queries.AvailabilityQueries,
	cal queries.CalendarQueries,
) *BookingHandler {
	return &BookingHandler{
		cmds:         cmds,
		reservations: reservations,
		availability: availability,
		calendar:     cal,
	}
}

// @Summary Create booking
// @Description Submit a reservation request. It starts out pending until staff decide on it.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	statusURL := BookingPath + view.ID.String()
	c.Header("Location", statusURL)
	c.JSON(http.StatusCreated, resdto.NewBookingCreatedResponse(view, statusURL))
}

// @Summary Get booking
// @Description Re-check a booking by its reference
// @Tags bookings
// @Produce json
// @Param id path string true "Booking reference"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// a reference that cannot exist is simply not found
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewBookingStatusResponse(view))
}

// @Summary Available time slots
// @Description Slots offered on a date, empty when the date is blocked
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	view, err := h.availability.SlotsForDate(c.Request.Context(), q.Date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Booking calendar
// @Description Month grid for the guest date picker. Past and blocked days are disabled.
// @Tags bookings
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar [get]
func (h *BookingHandler) Calendar(c *gin.Context) {
	renderCalendar(c, h.calendar, calendar.ModeSingle)
}

func renderCalendar(c *gin.Context, q queries.CalendarQueries, mode calendar.Mode) {
	var mq reqdto.MonthQuery
	if err := c.ShouldBindQuery(&mq); err != nil {
		abortBadRequest(c, err)
		return
	}

	year, month := q.CurrentMonth()
	if mq.Month != "" {
		var err error
		year, month, err = calendar.ParseMonth(mq.Month)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
	}

	grid, err := q.Month(c.Request.Context(), year, month, mode)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarMonth(grid, mode))
}
