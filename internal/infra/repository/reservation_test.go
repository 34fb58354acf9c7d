//go:build unit

package repository

import (
	"context"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReservationUpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected string
		current  pgx.Row
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "pending から確定",
			affected: "UPDATE 1",
		},
		{
			name:     "存在しない",
			affected: "UPDATE 0",
			current:  stubRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "確定済みは遷移不可",
			affected: "UPDATE 0",
			current:  stubRow{values: []any{"confirmed"}},
			wantKind: infra.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, updateReservationStatusSQL, []interface{}{id, "confirmed"}).
				Return(pgconn.NewCommandTag(tt.affected), nil)
			if tt.current != nil {
				mockDB.On("QueryRow", mock.Anything, selectReservationStatusSQL, []interface{}{id}).
					Return(tt.current)
			}

			err := NewReservationRepository(mockDB).UpdateStatus(context.Background(), id, reservation.StatusConfirmed)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestReservationDelete(t *testing.T) {
	id := uuid.New()

	t.Run("削除成功", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, deleteReservationSQL, []interface{}{id}).
			Return(pgconn.NewCommandTag("DELETE 1"), nil)
		assert.NoError(t, NewReservationRepository(mockDB).Delete(context.Background(), id))
	})

	t.Run("対象なしはNOT_FOUND", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, deleteReservationSQL, []interface{}{id}).
			Return(pgconn.NewCommandTag("DELETE 0"), nil)
		err := NewReservationRepository(mockDB).Delete(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("DBエラー", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, deleteReservationSQL, []interface{}{id}).
			Return(pgconn.CommandTag{}, assert.AnError)
		err := NewReservationRepository(mockDB).Delete(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCountActiveInSlot(t *testing.T) {
	mockDB := new(MockDBTX)
	mockDB.On("QueryRow", mock.Anything, countActiveInSlotSQL, []interface{}{"2024-07-04", "17:00"}).
		Return(stubRow{values: []any{3}})

	n, err := NewReservationRepository(mockDB).CountActiveInSlot(context.Background(), "2024-07-04", "17:00")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBlockedDatesLoadForUpdate(t *testing.T) {
	t.Run("行なしは空集合", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, selectSettingForUpdateSQL, []interface{}{BlockedDatesKey}).
			Return(stubRow{err: pgx.ErrNoRows})

		dates, err := NewBlockedDateRepository(mockDB).LoadForUpdate(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, dates.Len())
	})

	t.Run("既存ドキュメント", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, selectSettingForUpdateSQL, []interface{}{BlockedDatesKey}).
			Return(stubRow{values: []any{[]byte(`{"dates":["2024-07-04"]}`)}})

		dates, err := NewBlockedDateRepository(mockDB).LoadForUpdate(context.Background())
		assert.NoError(t, err)
		assert.True(t, dates.Contains("2024-07-04"))
	})
}
