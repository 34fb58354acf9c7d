//go:build unit

package session

import (
	"testing"

	"restaurant-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	t.Run("zero value is anonymous", func(t *testing.T) {
		var s State
		assert.False(t, s.IsAuthenticated())
		_, ok := s.Principal()
		assert.False(t, ok)
		assert.False(t, s.Allows(user.RoleViewer))
		assert.Equal(t, Anonymous(), s)
	})

	t.Run("authenticated operator", func(t *testing.T) {
		p := user.Principal{ID: uuid.New(), Email: "staff@example.com", Role: user.RoleOperator}
		s := Authenticated(p)

		assert.True(t, s.IsAuthenticated())
		got, ok := s.Principal()
		assert.True(t, ok)
		assert.Equal(t, p, got)

		assert.True(t, s.Allows(user.RoleViewer))
		assert.True(t, s.Allows(user.RoleOperator))
		assert.False(t, s.Allows(user.RoleAdmin))
	})
}
