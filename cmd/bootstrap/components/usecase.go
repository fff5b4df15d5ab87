package components

import (
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGuestUseCase,
		commands.NewRoomUseCase,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGuestQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewReportQueries,
	),
)
