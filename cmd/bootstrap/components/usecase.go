package components

import (
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/jwt"
	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	newTokenService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newBookingCommands,
		newAuthCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewBlockedDateQueries,
		newAvailabilityQueries,
		newCalendarQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newTokenService(s *jwt.Service) commands.TokenService {
	return s
}

func newBookingCommands(
	uow shared.UnitOfWork,
	blocked queries.BlockedDateReader,
	publisher shared.EventPublisher,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(uow, blocked, publisher, m, clk, commands.BookingConfig{
		SlotCapacity: cfg.Booking.SlotCapacity,
		Location:     cfg.Booking.Location(),
	})
}

func newAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	tokens commands.TokenService,
	throttle commands.LoginThrottle,
	m *metrics.Metrics,
	cfg config.Config,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, readStore, tokens, throttle, m, cfg.Auth)
}

func newAvailabilityQueries(uow shared.UnitOfWork, readers queries.AvailabilityReaders, cfg config.Config) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(uow, readers, cfg.Booking.SlotCapacity)
}

func newCalendarQueries(blocked queries.BlockedDateReader, clk clock.Clock, cfg config.Config) queries.CalendarQueries {
	return queries.NewCalendarQueries(blocked, clk, cfg.Booking.Location())
}
