package repository

import (
	"context"
	"encoding/json"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
)

const BlockedDatesKey = "blockedDates"

const (
	selectSettingForUpdateSQL = `SELECT document FROM settings WHERE key = $1 FOR UPDATE`

	upsertSettingSQL = `
INSERT INTO settings (key, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`
)

// BlockedDatesDocument is the JSON shape of the blockedDates settings row.
type BlockedDatesDocument struct {
	Dates []string `json:"dates"`
}

type BlockedDateRepository struct {
	db db.DBTX
}

func NewBlockedDateRepository(dbtx db.DBTX) *BlockedDateRepository {
	return &BlockedDateRepository{db: dbtx}
}

// LoadForUpdate treats a missing row as the empty set; the migration seeds it.
func (r *BlockedDateRepository) LoadForUpdate(ctx context.Context) (blocking.Dates, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, selectSettingForUpdateSQL, BlockedDatesKey).Scan(&raw)
	if err != nil {
		if infra.IsNoRows(err) {
			return blocking.NewDates(), nil
		}
		return blocking.Dates{}, infra.WrapRepoErr("failed to load blocked dates", err)
	}

	dates, err := DecodeBlockedDates(raw)
	if err != nil {
		return blocking.Dates{}, infra.WrapRepoErr("blocked dates document is malformed", err)
	}
	return dates, nil
}

func (r *BlockedDateRepository) Save(ctx context.Context, dates blocking.Dates) error {
	raw, err := json.Marshal(BlockedDatesDocument{Dates: dates.List()})
	if err != nil {
		return infra.WrapRepoErr("failed to encode blocked dates", err)
	}

	if _, err := r.db.Exec(ctx, upsertSettingSQL, BlockedDatesKey, raw); err != nil {
		return infra.WrapRepoErr("failed to save blocked dates", err)
	}
	return nil
}

func DecodeBlockedDates(raw []byte) (blocking.Dates, error) {
	var doc BlockedDatesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return blocking.Dates{}, err
	}
	return blocking.NewDates(doc.Dates...), nil
}
