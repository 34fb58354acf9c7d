package queries

import (
	"context"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, p user.Principal) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

// GetCurrentUser resolves the session principal. A recovery session has no stored
// account, so it is answered from the token alone.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, p user.Principal) (*AuthorizedUserView, error) {
	if p.Recovery {
		return &AuthorizedUserView{
			ID:       p.ID,
			Email:    p.Email,
			Role:     p.Role.String(),
			IsActive: true,
		}, nil
	}

	u, err := q.readStore.FindByID(ctx, p.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}
