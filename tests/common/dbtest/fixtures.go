//go:build unit || integration || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

// CreateTestUser inserts an active staff account whose password is DefaultPassword.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO admin_users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, strings.ToLower(email), defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admin_users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE admin_users SET is_active = false, updated_at = now() WHERE id = $1", userID)
	require.NoError(t, err)
}

// CreateTestReservation inserts a reservation directly, bypassing admission checks.
func CreateTestReservation(t *testing.T, db DBLike, date, slot, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (reservation_date, slot, party_size, name, email, phone, status)
		VALUES ($1::date, $2, 2, 'Test Guest', 'guest@example.com', '555-0100', $3)
		RETURNING id`,
		date, slot, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetBlockedDates(t *testing.T, db DBLike, dates ...string) {
	t.Helper()

	if dates == nil {
		dates = []string{}
	}
	doc, err := json.Marshal(map[string][]string{"dates": dates})
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"UPDATE settings SET document = $1::jsonb, updated_at = now() WHERE key = 'blockedDates'", string(doc))
	require.NoError(t, err)
}

// SeedReferenceData restores the rows the migration seeds, which TRUNCATE removes.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO settings (key, document) VALUES ('blockedDates', '{"dates": []}'::jsonb)
		ON CONFLICT (key) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
