package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	date      Date
	slot      Slot
	partySize PartySize
	contact   Contact
	status    Status
	createdAt time.Time
}

// NewReservation builds a reservation that has not been stored yet. The store assigns
// the id and creation time.
func NewReservation(date Date, slot Slot, partySize PartySize, contact Contact) *Reservation {
	return &Reservation{
		date:      date,
		slot:      slot,
		partySize: partySize,
		contact:   contact,
		status:    StatusPending,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	date Date,
	slot Slot,
	partySize PartySize,
	contact Contact,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		date:      date,
		slot:      slot,
		partySize: partySize,
		contact:   contact,
		status:    status,
		createdAt: createdAt,
	}
}

// Decide moves a pending reservation to confirmed or rejected.
func (r *Reservation) Decide(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

// Revise replaces every editable field. Staff edits may set any valid status.
func (r *Reservation) Revise(date Date, slot Slot, partySize PartySize, contact Contact, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.date = date
	r.slot = slot
	r.partySize = partySize
	r.contact = contact
	r.status = status
	return nil
}

func (r *Reservation) Stored(id uuid.UUID, createdAt time.Time) {
	r.id = id
	r.createdAt = createdAt
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) PartySize() PartySize { return r.partySize }
func (r *Reservation) Contact() Contact     { return r.contact }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
