package converter

import (
	"time"

	"restaurant-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationRow mirrors a reservations row with the date already rendered as YYYY-MM-DD.
type ReservationRow struct {
	ID        uuid.UUID
	Date      string
	Slot      string
	PartySize int
	Name      string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

func ReservationToRow(res *reservation.Reservation) ReservationRow {
	contact := res.Contact()
	return ReservationRow{
		ID:        res.ID(),
		Date:      res.Date().String(),
		Slot:      res.Slot().String(),
		PartySize: res.PartySize().Int(),
		Name:      contact.Name(),
		Email:     contact.Email(),
		Phone:     contact.Phone(),
		Status:    res.Status().String(),
		CreatedAt: res.CreatedAt(),
	}
}

func RowToReservation(row ReservationRow) (*reservation.Reservation, error) {
	fields, err := reservation.ParseFields(row.Date, row.Slot, row.PartySize, row.Name, row.Email, row.Phone)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		fields.Date,
		fields.Slot,
		fields.PartySize,
		fields.Contact,
		status,
		row.CreatedAt,
	), nil
}
