package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read model for a single reservation. Field order matches
// the readstore SELECT list.
type ReservationView struct {
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

// ReservationStats counts the whole collection, independent of any filter.
type ReservationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Rejected  int `json:"rejected"`
}

type ReservationList struct {
	Items []*ReservationView
	Stats ReservationStats
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type AvailabilityView struct {
	Date    string   `json:"date"`
	Blocked bool     `json:"blocked"`
	Slots   []string `json:"slots"`
}
