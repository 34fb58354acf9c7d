package response

import (
	"fmt"
	"time"

	"restaurant-booking/internal/domain/calendar"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	PartySize int       `json:"party_size"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingStatusResponse is what an anonymous holder of a booking reference may see.
// Contact details stay behind the admin API.
type BookingStatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Name      string    `json:"name"`
	PartySize int       `json:"party_size"`
}

// BookingCreatedResponse is the booking reference handed back to the guest.
type BookingCreatedResponse struct {
	ID          uuid.UUID            `json:"id"`
	Status      string               `json:"status"`
	StatusURL   string               `json:"status_url"`
	Reservation *ReservationResponse `json:"reservation"`
}

type ReservationListResponse struct {
	Items []*ReservationResponse   `json:"items"`
	Stats queries.ReservationStats `json:"stats"`
}

type BlockedDatesResponse struct {
	Dates []string `json:"dates"`
}

type DeleteReservationResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

type AvailabilityResponse struct {
	Date    string   `json:"date"`
	Blocked bool     `json:"blocked"`
	Slots   []string `json:"slots"`
}

type CalendarDayResponse struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	IsToday   bool   `json:"is_today"`
	IsPast    bool   `json:"is_past"`
	IsBlocked bool   `json:"is_blocked"`
	Disabled  bool   `json:"disabled"`
}

type CalendarResponse struct {
	Month         string                 `json:"month"`
	Mode          string                 `json:"mode"`
	LeadingBlanks int                    `json:"leading_blanks"`
	Days          []*CalendarDayResponse `json:"days"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil
	}
	return res
}

func NewBookingStatusResponse(v *queries.ReservationView) *BookingStatusResponse {
	return &BookingStatusResponse{
		ID:        v.ID,
		Status:    v.Status,
		Date:      v.Date,
		Time:      v.Time,
		Name:      v.Name,
		PartySize: v.PartySize,
	}
}

func FromReservationViews(list []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromReservationList(list *queries.ReservationList) *ReservationListResponse {
	return &ReservationListResponse{
		Items: FromReservationViews(list.Items),
		Stats: list.Stats,
	}
}

func NewBookingCreatedResponse(v *queries.ReservationView, statusURL string) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:          v.ID,
		Status:      v.Status,
		StatusURL:   statusURL,
		Reservation: FromReservationView(v),
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{Slots: []string{}}
	if err := copier.Copy(res, v); err != nil {
		return nil
	}
	if res.Slots == nil {
		res.Slots = []string{}
	}
	return res
}

func FromCalendarMonth(m calendar.Month, mode calendar.Mode) *CalendarResponse {
	days := make([]*CalendarDayResponse, 0, len(m.Days))
	if err := copier.Copy(&days, &m.Days); err != nil {
		return nil
	}
	return &CalendarResponse{
		Month:         fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
		Mode:          string(mode),
		LeadingBlanks: m.LeadingBlanks,
		Days:          days,
	}
}
