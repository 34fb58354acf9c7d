package request

import (
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/patch"
	"restaurant-booking/internal/usecase/queries"
)

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required,isodate"`
	Time      string `json:"time" binding:"required,slot"`
	PartySize int    `json:"party_size" binding:"required,min=1,max=12"`
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=254"`
	Phone     string `json:"phone" binding:"required,max=40"`
}

// ToDomain repeats the domain checks so the use case never trusts binding alone.
func (r *CreateBookingRequest) ToDomain() (*reservation.Reservation, error) {
	fields, err := reservation.ParseFields(r.Date, r.Time, r.PartySize, r.Name, r.Email, r.Phone)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(fields.Date, fields.Slot, fields.PartySize, fields.Contact), nil
}

// UpdateReservationRequest is a partial edit; absent fields keep their stored value.
type UpdateReservationRequest struct {
	Date      *string `json:"date" binding:"omitempty,isodate"`
	Time      *string `json:"time" binding:"omitempty,slot"`
	PartySize *int    `json:"party_size" binding:"omitempty,min=1,max=12"`
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,max=254"`
	Phone     *string `json:"phone" binding:"omitempty,max=40"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending confirmed rejected"`
}

func (r *UpdateReservationRequest) ToDomain(existing *queries.ReservationView) (*reservation.Reservation, error) {
	fields, err := reservation.ParseFields(
		patch.Coalesce(r.Date, existing.Date),
		patch.Coalesce(r.Time, existing.Time),
		patch.Coalesce(r.PartySize, existing.PartySize),
		patch.Coalesce(r.Name, existing.Name),
		patch.Coalesce(r.Email, existing.Email),
		patch.Coalesce(r.Phone, existing.Phone),
	)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(patch.Coalesce(r.Status, existing.Status))
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		existing.ID,
		fields.Date,
		fields.Slot,
		fields.PartySize,
		fields.Contact,
		status,
		existing.CreatedAt,
	), nil
}

type ToggleBlockedDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,max=366,dive,isodate"`
}

type ReservationListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=all pending confirmed rejected"`
	Search string `form:"q" binding:"omitempty,max=100"`
}

type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}
