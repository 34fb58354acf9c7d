package readstore

import (
	"context"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository"
)

const selectSettingSQL = `SELECT document FROM settings WHERE key = $1`

type BlockedDateReadStore struct {
	db db.DBTX
}

func NewBlockedDateReadStore(dbtx db.DBTX) *BlockedDateReadStore {
	return &BlockedDateReadStore{db: dbtx}
}

// Get returns the blocked dates. A missing document is the empty set, a failed read is an error.
func (r *BlockedDateReadStore) Get(ctx context.Context) (blocking.Dates, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, selectSettingSQL, repository.BlockedDatesKey).Scan(&raw)
	if err != nil {
		if infra.IsNoRows(err) {
			return blocking.NewDates(), nil
		}
		return blocking.Dates{}, infra.WrapRepoErr("failed to read blocked dates", err)
	}

	dates, err := repository.DecodeBlockedDates(raw)
	if err != nil {
		return blocking.Dates{}, infra.WrapRepoErr("blocked dates document is malformed", err)
	}
	return dates, nil
}
