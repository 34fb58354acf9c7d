//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlockedDates(t *testing.T) {
	t.Run("重複は1件に", func(t *testing.T) {
		dates, err := DecodeBlockedDates([]byte(`{"dates":["2024-12-25","2024-07-04","2024-12-25"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-07-04", "2024-12-25"}, dates.List())
	})

	t.Run("datesなしは空集合", func(t *testing.T) {
		dates, err := DecodeBlockedDates([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, 0, dates.Len())
	})

	t.Run("壊れたJSONNG", func(t *testing.T) {
		_, err := DecodeBlockedDates([]byte(`{"dates":`))
		assert.Error(t, err)
	})
}
