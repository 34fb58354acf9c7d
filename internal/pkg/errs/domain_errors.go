package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrDeleteNotConfirmed  = errors.New("delete not confirmed")

	// Booking errors
	ErrDateBlocked     = errors.New("date is blocked")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrSlotFull        = errors.New("slot is full")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
