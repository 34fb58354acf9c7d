//go:build unit || integration || e2e

package builder

import (
	"time"

	"restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	Date      string
	Time      string
	PartySize int
	Name      string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		Date:      "2024-07-04",
		Time:      "17:00",
		PartySize: gofakeit.Number(reservation.MinPartySize, reservation.MaxPartySize),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		Status:    reservation.StatusPending.String(),
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	fields, err := reservation.ParseFields(r.Date, r.Time, r.PartySize, r.Name, r.Email, r.Phone)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(fields.Date, fields.Slot, fields.PartySize, fields.Contact), nil
}

func (r *ReservationBuilder) BuildStored() (*reservation.Reservation, error) {
	fields, err := reservation.ParseFields(r.Date, r.Time, r.PartySize, r.Name, r.Email, r.Phone)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(r.ID, fields.Date, fields.Slot, fields.PartySize, fields.Contact, status, r.CreatedAt), nil
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        r.ID,
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(slot string) *ReservationBuilder {
	r.Time = slot
	return r
}

func (r *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	r.PartySize = n
	return r
}

func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	r.Email = email
	return r
}

func (r *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithCreatedAt(t time.Time) *ReservationBuilder {
	r.CreatedAt = t
	return r
}
