//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
	reqdto "hotel-management/internal/handler/dto/request"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/usecase/queries"
	"hotel-management/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID               uuid.UUID
	GuestID          uuid.UUID
	RoomID           uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	NumberOfGuests   int
	SpecialRequests  string
	Status           string
	PaymentStatus    string
	NightlyRateCents int64
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:               uuid.New(),
		GuestID:          uuid.New(),
		RoomID:           uuid.New(),
		CheckIn:          time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC),
		NumberOfGuests:   2,
		Status:           reservation.StatusPending.String(),
		PaymentStatus:    reservation.PaymentPending.String(),
		NightlyRateCents: 10000,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithNightlyRateCents(cents int64) *ReservationBuilder {
	b.NightlyRateCents = cents
	return b
}

func (b *ReservationBuilder) WithStatus(status, payment string) *ReservationBuilder {
	b.Status = status
	b.PaymentStatus = payment
	return b
}

func (b *ReservationBuilder) nights() int64 {
	return int64(reservation.DaysBetween(b.CheckIn, b.CheckOut))
}

func (b *ReservationBuilder) TotalCents() int64 {
	return b.nights() * b.NightlyRateCents
}

// BuildDomain creates a new pending reservation priced per night.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	booking, err := b.booking()
	if err != nil {
		return nil, err
	}
	rate, err := money.FromCents(b.NightlyRateCents)
	if err != nil {
		return nil, err
	}
	services := &reservation.Services{
		Clock:           clock.NewMockClock(fixedNow),
		PriceCalculator: reservation.NewNightlyPriceCalculator(),
	}
	return reservation.NewReservation(services, booking, reservation.RoomSpec{
		ID:            b.RoomID,
		PricePerNight: rate,
		IsAvailable:   true,
	})
}

func (b *ReservationBuilder) booking() (reservation.Booking, error) {
	period, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return reservation.Booking{}, err
	}
	guests, err := reservation.NewGuestCount(b.NumberOfGuests)
	if err != nil {
		return reservation.Booking{}, err
	}
	requests, err := reservation.NewSpecialRequests(b.SpecialRequests)
	if err != nil {
		return reservation.Booking{}, err
	}
	return reservation.Booking{
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		Period:          period,
		Guests:          guests,
		SpecialRequests: requests,
	}, nil
}

func (b *ReservationBuilder) BuildRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckInDate:     b.CheckIn.Format(reqdto.DateLayout),
		CheckOutDate:    b.CheckOut.Format(reqdto.DateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		GuestID:         b.GuestID,
		GuestName:       "John Smith",
		GuestEmail:      "john.smith@email.com",
		RoomID:          b.RoomID,
		RoomNumber:      "101",
		RoomType:        "Standard Single",
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		TotalPriceCents: b.TotalCents(),
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              b.ID,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		TotalPriceCents: b.TotalCents(),
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	}
}
