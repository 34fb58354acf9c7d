package api

import (
	"context"
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

type AdminHandler struct {
	cmds         commands.AdminCommands
	reservations queries.ReservationQueries
	blockedDates queries.BlockedDateQueries
	calendar     queries.CalendarQueries
}

func NewAdminHandler(
	cmds commands.AdminCommands,
	reservations queries.ReservationQueries,
	blockedDates queries.BlockedDateQueries,
	cal queries.CalendarQueries,
) *AdminHandler {
	return &AdminHandler{
		cmds:         cmds,
		reservations: reservations,
		blockedDates: blockedDates,
		calendar:     cal,
	}
}

// @Summary List reservations
// @Description Newest first, filtered by status and a search term over name, email and phone. Stats cover every reservation.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "all, pending, confirmed or rejected"
// @Param q query string false "Search term"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) List(c *gin.Context) {
	var q reqdto.ReservationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	list, err := h.reservations.List(c.Request.Context(), queries.ReservationFilter{Status: q.Status, Search: q.Search})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(list))
}

// @Summary Get reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Approve reservation
// @Description Confirms a pending reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Reject reservation
// @Description Rejects a pending reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/reject [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

func (h *AdminHandler) decide(c *gin.Context, decide func(context.Context, uuid.UUID) (*queries.ReservationView, error)) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := decide(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Edit reservation
// @Description Partial update. Omitted fields keep their stored value.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id} [patch]
func (h *AdminHandler) Edit(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	view, err := h.cmds.Edit(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Permanently deletes a reservation. The confirm parameter must repeat the id.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param confirm query string true "Reservation ID again"
// @Success 200 {object} resdto.DeleteReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, c.Query("confirm")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteReservationResponse{ID: id, Deleted: true})
}

// @Summary List blocked dates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BlockedDatesResponse
// @Router /admin/blocked-dates [get]
func (h *AdminHandler) ListBlockedDates(c *gin.Context) {
	dates, err := h.blockedDates.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedDatesResponse{Dates: dates})
}

// @Summary Toggle blocked dates
// @Description Blocks each listed date that is open and unblocks each that is blocked, in one step
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ToggleBlockedDatesRequest true "Dates to toggle"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/blocked-dates/toggle [post]
func (h *AdminHandler) ToggleBlockedDates(c *gin.Context) {
	var req reqdto.ToggleBlockedDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	dates, err := h.cmds.ToggleBlockedDates(c.Request.Context(), req.Dates)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedDatesResponse{Dates: dates})
}

// @Summary Unblock date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/blocked-dates/{date} [delete]
func (h *AdminHandler) UnblockDate(c *gin.Context) {
	dates, err := h.cmds.UnblockDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedDatesResponse{Dates: dates})
}

// @Summary Admin calendar
// @Description Month grid for blocking dates. No day is disabled.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} resdto.CalendarResponse
// @Router /admin/calendar [get]
func (h *AdminHandler) Calendar(c *gin.Context) {
	renderCalendar(c, h.calendar, calendar.ModeMultiple)
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		return uuid.Nil, false
	}
	return id, true
}
