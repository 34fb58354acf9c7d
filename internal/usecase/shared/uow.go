package shared

import (
	"context"

	"restaurant-booking/internal/domain/blocking"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction; every query in fn sees the same snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	BlockedDates() BlockedDateRepository
	Users() UserRepository
}

type ReservationRepository interface {
	// Create stores a new reservation and fills in its id and creation time.
	Create(ctx context.Context, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateStatus only succeeds while the stored status is still pending.
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// LockSlot serialises admission checks for one date and slot until the tx ends.
	LockSlot(ctx context.Context, date, slot string) error
	CountActiveInSlot(ctx context.Context, date, slot string) (int, error)
}

type BlockedDateRepository interface {
	// LoadForUpdate row-locks the blocked dates document for the rest of the tx.
	LoadForUpdate(ctx context.Context) (blocking.Dates, error)
	Save(ctx context.Context, dates blocking.Dates) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
