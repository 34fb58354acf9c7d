//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

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

func sampleViews() []*queries.ReservationView {
	return []*queries.ReservationView{
		builder.NewReservationBuilder().WithName("Alice Smith").WithEmail("alice@example.com").WithPhone("555-0101").WithStatus("pending").BuildView(),
		builder.NewReservationBuilder().WithName("Bob Jones").WithEmail("bob@example.com").WithPhone("555-0202").WithStatus("confirmed").BuildView(),
		builder.NewReservationBuilder().WithName("Carol White").WithEmail("carol@ALICORN.io").WithPhone("555-0303").WithStatus("pending").BuildView(),
		builder.NewReservationBuilder().WithName("Dan Brown").WithEmail("dan@example.com").WithPhone("555-0404").WithStatus("rejected").BuildView(),
	}
}

func names(list []*queries.ReservationView) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.Name)
	}
	return out
}

func TestFilterReservations(t *testing.T) {
	list := sampleViews()

	tests := []struct {
		name   string
		filter queries.ReservationFilter
		want   []string
	}{
		{"all はそのまま", queries.ReservationFilter{Status: "all"}, []string{"Alice Smith", "Bob Jones", "Carol White", "Dan Brown"}},
		{"空の条件もそのまま", queries.ReservationFilter{}, []string{"Alice Smith", "Bob Jones", "Carol White", "Dan Brown"}},
		{"pending は順序を保つ", queries.ReservationFilter{Status: "pending"}, []string{"Alice Smith", "Carol White"}},
		{"名前は大文字小文字を区別しない", queries.ReservationFilter{Status: "all", Search: "ali"}, []string{"Alice Smith", "Carol White"}},
		{"メールも検索対象", queries.ReservationFilter{Search: "BOB@"}, []string{"Bob Jones"}},
		{"電話番号は部分一致", queries.ReservationFilter{Search: "0404"}, []string{"Dan Brown"}},
		{"ステータスと検索の両方", queries.ReservationFilter{Status: "confirmed", Search: "ali"}, []string{}},
		{"一致なし", queries.ReservationFilter{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(queries.FilterReservations(list, tt.filter)))
		})
	}
}

func TestSummarize(t *testing.T) {
	stats := queries.Summarize(sampleViews())
	assert.Equal(t, queries.ReservationStats{Total: 4, Pending: 2, Confirmed: 1, Rejected: 1}, stats)
	assert.Equal(t, queries.ReservationStats{}, queries.Summarize(nil))
}

func TestReservationQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	q := queries.NewReservationQueries(repo)

	t.Run("統計は絞り込み前の全件で数える", func(t *testing.T) {
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleViews(), nil)

		list, err := q.List(context.Background(), queries.ReservationFilter{Status: "rejected"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Dan Brown"}, names(list.Items))
		assert.Equal(t, 4, list.Stats.Total)
		assert.Equal(t, 2, list.Stats.Pending)
	})

	t.Run("読み込み失敗", func(t *testing.T) {
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := q.List(context.Background(), queries.ReservationFilter{})
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	q := queries.NewReservationQueries(repo)

	t.Run("見つかる", func(t *testing.T) {
		view := builder.NewReservationBuilder().BuildView()
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("存在しない", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}
