//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("有効なユーザー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		b := builder.NewUserBuilder()
		store.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildReadModel(), nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, b.BuildPrincipal())

		require.NoError(t, err)
		assert.Equal(t, b.Email, got.Email)
	})

	t.Run("無効化されたユーザー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		b := builder.NewUserBuilder().AsInactive()
		store.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildReadModel(), nil)

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, b.BuildPrincipal())
		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})

	t.Run("存在しないユーザー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, user.Principal{ID: id, Role: user.RoleViewer})
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("DB障害", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("connection refused"))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, user.Principal{ID: id, Role: user.RoleViewer})
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("復旧用セッションはストアを参照しない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		p := user.Principal{ID: uuid.New(), Email: "recovery@example.com", Role: user.RoleAdmin, Recovery: true}

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, "admin", got.Role)
		assert.True(t, got.IsActive)
	})
}
