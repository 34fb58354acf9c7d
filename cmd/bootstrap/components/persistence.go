package components

import (
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/readstore"
	"restaurant-booking/internal/infra/uow"
	"restaurant-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule provides the read stores over the pool and the unit of work.
// Write repositories are created per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Blocked dates
		fx.Annotate(
			readstore.NewBlockedDateReadStore,
			fx.As(new(queries.BlockedDateReader)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Snapshot readers for availability
		NewAvailabilityReaders,
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAvailabilityReaders() queries.AvailabilityReaders {
	return func(dbtx db.DBTX) (queries.BlockedDateReader, queries.SlotOccupancyReader) {
		return readstore.NewBlockedDateReadStore(dbtx), readstore.NewReservationReadStore(dbtx)
	}
}
