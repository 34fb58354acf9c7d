package repository

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (reservation_date, slot, party_size, name, email, phone, status)
VALUES ($1::date, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	selectReservationForUpdateSQL = `
SELECT id, to_char(reservation_date, 'YYYY-MM-DD'), slot, party_size, name, email, phone, status, created_at
FROM reservations
WHERE id = $1
FOR UPDATE`

	updateReservationStatusSQL = `
UPDATE reservations
SET status = $2
WHERE id = $1 AND status = 'pending'`

	selectReservationStatusSQL = `SELECT status FROM reservations WHERE id = $1`

	updateReservationSQL = `
UPDATE reservations
SET reservation_date = $2::date, slot = $3, party_size = $4, name = $5, email = $6, phone = $7, status = $8
WHERE id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

	lockSlotSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

	countActiveInSlotSQL = `
SELECT count(*)
FROM reservations
WHERE reservation_date = $1::date AND slot = $2 AND status <> 'rejected'`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToRow(res)

	var stored converter.ReservationRow
	err := r.db.QueryRow(ctx, insertReservationSQL,
		row.Date, row.Slot, row.PartySize, row.Name, row.Email, row.Phone, row.Status,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	res.Stored(stored.ID, stored.CreatedAt)
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	err := r.db.QueryRow(ctx, selectReservationForUpdateSQL, id).Scan(
		&row.ID, &row.Date, &row.Slot, &row.PartySize, &row.Name, &row.Email, &row.Phone, &row.Status, &row.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	res, err := converter.RowToReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Nothing matched: either the row is gone or it already left pending.
	var current string
	err = r.db.QueryRow(ctx, selectReservationStatusSQL, id).Scan(&current)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to read reservation status", err)
	}
	return infra.WrapRepoErr("reservation is no longer pending: "+current, nil, infra.KindConflict)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToRow(res)

	tag, err := r.db.Exec(ctx, updateReservationSQL,
		res.ID(), row.Date, row.Slot, row.PartySize, row.Name, row.Email, row.Phone, row.Status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) LockSlot(ctx context.Context, date, slot string) error {
	if _, err := r.db.Exec(ctx, lockSlotSQL, "reservation-slot:"+date+"T"+slot); err != nil {
		return infra.WrapRepoErr("failed to lock slot", err)
	}
	return nil
}

func (r *ReservationRepository) CountActiveInSlot(ctx context.Context, date, slot string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countActiveInSlotSQL, date, slot).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations in slot", err)
	}
	return n, nil
}
