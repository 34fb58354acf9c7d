//go:build unit

package converter

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToReservation(t *testing.T) {
	row := ReservationRow{
		ID:        uuid.New(),
		Date:      "2024-07-04",
		Slot:      "18:00",
		PartySize: 2,
		Name:      "Alice",
		Email:     "",
		Phone:     "555-0100",
		Status:    "confirmed",
		CreatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	res, err := RowToReservation(row)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status())

	if diff := cmp.Diff(row, ReservationToRow(res)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowToReservation_Invalid(t *testing.T) {
	_, err := RowToReservation(ReservationRow{Date: "2024-07-04", Slot: "18:00", PartySize: 2, Name: "A", Phone: "1", Status: "archived"})
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

	_, err = RowToReservation(ReservationRow{Date: "bad", Slot: "18:00", PartySize: 2, Name: "A", Phone: "1", Status: "pending"})
	assert.ErrorIs(t, err, reservation.ErrInvalidDate)
}
