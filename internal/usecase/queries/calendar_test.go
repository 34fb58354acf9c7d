//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/domain/calendar"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/usecase/queries"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarQueries(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-07-31 20:00 UTC is already August 1st in Tokyo
	clk := clock.NewMockClock(time.Date(2024, 7, 31, 20, 0, 0, 0, time.UTC))

	t.Run("今月は店舗のタイムゾーンで決まる", func(t *testing.T) {
		q := queries.NewCalendarQueries(nil, clk, tokyo)
		year, month := q.CurrentMonth()
		assert.Equal(t, 2024, year)
		assert.Equal(t, time.August, month)
	})

	t.Run("ゲスト用グリッド", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBlockedDateReader(ctrl)
		reader.EXPECT().Get(gomock.Any()).Return(blocking.NewDates("2024-08-10"), nil)

		grid, err := queries.NewCalendarQueries(reader, clk, tokyo).Month(context.Background(), 2024, time.August, calendar.ModeSingle)

		require.NoError(t, err)
		require.Len(t, grid.Days, 31)
		assert.Equal(t, 4, grid.LeadingBlanks)
		assert.True(t, grid.Days[0].IsToday)
		assert.False(t, grid.Days[0].Disabled)
		assert.True(t, grid.Days[9].IsBlocked)
		assert.True(t, grid.Days[9].Disabled)
	})

	t.Run("管理者用グリッドは無効日なし", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockBlockedDateReader(ctrl)
		reader.EXPECT().Get(gomock.Any()).Return(blocking.NewDates("2024-07-10"), nil)

		grid, err := queries.NewCalendarQueries(reader, clk, tokyo).Month(context.Background(), 2024, time.July, calendar.ModeMultiple)

		require.NoError(t, err)
		for _, d := range grid.Days {
			assert.True(t, d.IsPast)
			assert.False(t, d.Disabled)
		}
	})
}
