package components

import (
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/infra/readstore"
	"hotel-management/internal/infra/uow"
	"hotel-management/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work, so only
// the read side is wired here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Guest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GuestReadQueries)),
		),
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Reports
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StayReadQueries)),
		),
		fx.Annotate(
			readstore.NewStayReadStore,
			fx.As(new(queries.ReportStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
