package api

import (
	"net/http"

	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps use case sentinels onto HTTP statuses. Anything
// unrecognised is treated as a store failure: 503 for writes, 500 for reads.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrReservationNotFound), errs.Is(err, queries.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationDetail(err))
	case errs.Is(err, commands.ErrDateBlocked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Date is not accepting bookings", nil)
	case errs.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is not available", nil)
	case errs.Is(err, commands.ErrSlotFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is fully booked", nil)
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation has already been decided", nil)
	case errs.Is(err, commands.ErrDeleteNotConfirmed):
		httperr.AbortWithError(c, http.StatusPreconditionRequired, err, "Deletion must be confirmed with the reservation id", nil)
	case errs.Is(err, commands.ErrTooManyAttempts):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many login attempts, try again later", nil)
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrTokenValidation),
		errs.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case c.Request.Method == http.MethodGet:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
	}
}

// validationDetail exposes the domain message. Marking keeps it unchanged.
func validationDetail(err error) any {
	return gin.H{"reason": err.Error()}
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
}
