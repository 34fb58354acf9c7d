//go:build unit

package migrations

import (
	"fmt"
	"testing"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss word",
		DBName:   "booking",
		SSLMode:  "disable",
	}
	assert.Equal(t, "pgx5://app:p%40ss%20word@db:5432/booking?sslmode=disable", URL(cfg))
}

func TestEmbeddedFiles(t *testing.T) {
	up, err := files.ReadFile("000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "blockedDates")

	_, err = files.ReadFile("000001_init.down.sql")
	require.NoError(t, err)
}

func TestUp_WrapsErrorsWithStack(t *testing.T) {
	err := Up("unknown-driver://localhost/booking")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to create migrator")
	assert.Contains(t, fmt.Sprintf("%+v", err), "migrations.newMigrate")
	assert.NotEmpty(t, errs.ExtractStackLines(err, 20))
}
