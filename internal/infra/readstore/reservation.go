package readstore

import (
	"context"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	reservationColumns = `id, to_char(reservation_date, 'YYYY-MM-DD'), slot, party_size, name, email, phone, status, created_at`

	selectReservationByIDSQL = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	selectAllReservationsSQL = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC, id DESC`

	countActiveByDateSQL = `
SELECT slot, count(*)
FROM reservations
WHERE reservation_date = $1::date AND status <> 'rejected'
GROUP BY slot`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, selectReservationByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.ReservationView])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, selectAllReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ReservationView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return views, nil
}

func (r *ReservationReadStore) CountActiveByDate(ctx context.Context, date string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, countActiveByDateSQL, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by slot", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slot string
		var n int
		if err := rows.Scan(&slot, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot count", err)
		}
		counts[slot] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot counts", err)
	}
	return counts, nil
}
