package components

import (
	"hotel-management/internal/handler"
	"hotel-management/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGuestHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewReportHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Guest       *api.GuestHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	Report      *api.ReportHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Guest:       p.Guest,
		Room:        p.Room,
		Reservation: p.Reservation,
		Report:      p.Report,
	}
}
