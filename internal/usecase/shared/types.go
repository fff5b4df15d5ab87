package shared

import (
	"time"

	"hotel-management/internal/domain/guest"
	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/domain/room"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query views.

type GuestSnapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *GuestSnapshot) Aggregate() *guest.Guest {
	return guest.ReconstructGuest(s.ID, s.Name, s.Email, s.Phone, s.CreatedAt, s.UpdatedAt)
}

type RoomSnapshot struct {
	ID                 uuid.UUID
	Number             string
	Type               string
	PricePerNightCents int64
	Description        string
	IsAvailable        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (s *RoomSnapshot) Aggregate() *room.Room {
	return room.ReconstructRoom(s.ID, room.Attributes{
		Number:        s.Number,
		Type:          s.Type,
		PricePerNight: money.MustCents(s.PricePerNightCents),
		Description:   s.Description,
		IsAvailable:   s.IsAvailable,
	}, s.CreatedAt, s.UpdatedAt)
}

func (s *RoomSnapshot) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:            s.ID,
		PricePerNight: money.MustCents(s.PricePerNightCents),
		IsAvailable:   s.IsAvailable,
	}
}

type ReservationSnapshot struct {
	ID              uuid.UUID
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	SpecialRequests string
	Status          string
	PaymentStatus   string
	TotalPriceCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Aggregate rebuilds the reservation. Stored rows passed the schema checks,
// so a failure here means the row was written outside this service.
func (s *ReservationSnapshot) Aggregate() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuestCount(s.NumberOfGuests)
	if err != nil {
		return nil, err
	}
	requests, err := reservation.NewSpecialRequests(s.SpecialRequests)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	payment, err := reservation.ParsePaymentStatus(s.PaymentStatus)
	if err != nil {
		return nil, err
	}
	total, err := money.FromCents(s.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	b := reservation.Booking{
		GuestID:         s.GuestID,
		RoomID:          s.RoomID,
		Period:          period,
		Guests:          guests,
		SpecialRequests: requests,
	}
	return reservation.ReconstructReservation(s.ID, b, status, payment, total, s.CreatedAt, s.UpdatedAt), nil
}
