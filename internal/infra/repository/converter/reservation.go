package converter

import (
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/infra/pgsql"
	"hotel-management/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) pgsql.CreateReservationParams {
	period := res.Period()
	return pgsql.CreateReservationParams{
		ID:              res.ID(),
		GuestID:         res.GuestID(),
		RoomID:          res.RoomID(),
		CheckIn:         pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:        pgconv.DateToPgtype(period.CheckOut()),
		NumberOfGuests:  guestCount(res),
		SpecialRequests: pgconv.OptionalStringToPgtype(res.SpecialRequests().String()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) pgsql.UpdateReservationParams {
	period := res.Period()
	return pgsql.UpdateReservationParams{
		ID:              res.ID(),
		GuestID:         res.GuestID(),
		RoomID:          res.RoomID(),
		CheckIn:         pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:        pgconv.DateToPgtype(period.CheckOut()),
		NumberOfGuests:  guestCount(res),
		SpecialRequests: pgconv.OptionalStringToPgtype(res.SpecialRequests().String()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func guestCount(res *reservation.Reservation) int32 {
	// #nosec G115 -- value is validated to 1..10 by the domain
	return int32(res.Guests().Int())
}
