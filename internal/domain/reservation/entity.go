package reservation

import (
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/pkg/clock"
	"hotel-management/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod      = errs.New("check-out date must be after check-in date")
	ErrInvalidGuestCount      = errs.New("number of guests must be between 1 and 10")
	ErrSpecialRequestsTooLong = errs.New("special requests exceed maximum length")
	ErrInvalidStatus          = errs.New("invalid reservation status")
	ErrInvalidPaymentStatus   = errs.New("invalid payment status")
	ErrInvalidTransition      = errs.ErrInvalidTransition
	ErrRoomUnavailable        = errs.New("room is not available")
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// RoomSpec is the part of a room the reservation aggregate needs.
type RoomSpec struct {
	ID            uuid.UUID
	PricePerNight money.Money
	IsAvailable   bool
}

// Booking holds the caller-supplied fields of a reservation.
type Booking struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	Period          StayPeriod
	Guests          GuestCount
	SpecialRequests SpecialRequests
}

type Reservation struct {
	id        uuid.UUID
	booking   Booking
	status    Status
	payment   PaymentStatus
	total     money.Money
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(services *Services, b Booking, room RoomSpec) (*Reservation, error) {
	if room.ID != b.RoomID {
		return nil, errs.Newf("room spec %s does not match booking room %s", room.ID, b.RoomID)
	}
	if !room.IsAvailable {
		return nil, ErrRoomUnavailable
	}
	now := services.Clock.Now()
	return &Reservation{
		id:        uuid.New(),
		booking:   b,
		status:    StatusPending,
		payment:   PaymentPending,
		total:     services.PriceCalculator.Calculate(room.PricePerNight, b.Period),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	b Booking,
	status Status,
	payment PaymentStatus,
	total money.Money,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		booking:   b,
		status:    status,
		payment:   payment,
		total:     total,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces the booking fields. The total is recomputed only when the
// room or the stay period changes; a new room must have its manual flag set.
func (r *Reservation) Revise(services *Services, b Booking, room RoomSpec) error {
	if room.ID != b.RoomID {
		return errs.Newf("room spec %s does not match booking room %s", room.ID, b.RoomID)
	}
	roomChanged := b.RoomID != r.booking.RoomID
	if roomChanged && !room.IsAvailable {
		return ErrRoomUnavailable
	}
	if roomChanged || !b.Period.Equal(r.booking.Period) {
		r.total = services.PriceCalculator.Calculate(room.PricePerNight, b.Period)
	}
	r.booking = b
	r.updatedAt = services.Clock.Now()
	return nil
}

// TransitionStatus moves along the status table. Staying in place is a no-op.
func (r *Reservation) TransitionStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if to == r.status {
		return nil
	}
	if !r.status.CanTransitionTo(to) {
		return &TransitionError{Field: "status", From: r.status.String(), To: to.String()}
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// TransitionPayment moves along the payment table. Staying in place is a no-op.
func (r *Reservation) TransitionPayment(to PaymentStatus, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidPaymentStatus
	}
	if to == r.payment {
		return nil
	}
	if !r.payment.CanTransitionTo(to) {
		return &TransitionError{Field: "payment status", From: r.payment.String(), To: to.String()}
	}
	r.payment = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) GuestID() uuid.UUID               { return r.booking.GuestID }
func (r *Reservation) RoomID() uuid.UUID                { return r.booking.RoomID }
func (r *Reservation) Period() StayPeriod               { return r.booking.Period }
func (r *Reservation) Guests() GuestCount               { return r.booking.Guests }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.booking.SpecialRequests }
func (r *Reservation) Booking() Booking                 { return r.booking }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus     { return r.payment }
func (r *Reservation) TotalPrice() money.Money          { return r.total }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
