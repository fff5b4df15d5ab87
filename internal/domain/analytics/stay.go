package analytics

import (
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"

	"github.com/google/uuid"
)

// Stay is one reservation row joined with its guest and room, as the
// aggregators consume it.
type Stay struct {
	ReservationID uuid.UUID
	GuestID       uuid.UUID
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	RoomID        uuid.UUID
	RoomNumber    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        reservation.Status
	Payment       reservation.PaymentStatus
	TotalPrice    money.Money
}

func (s Stay) Nights() int {
	n := reservation.DaysBetween(s.CheckIn, s.CheckOut)
	if n < 0 {
		return 0
	}
	return n
}

func (s Stay) IsPaid() bool      { return s.Payment == reservation.PaymentPaid }
func (s Stay) IsCancelled() bool { return s.Status == reservation.StatusCancelled }

// occupies reports whether the stay holds its room on the night starting at d.
func (s Stay) occupies(d time.Time) bool {
	return !reservation.DateOf(s.CheckIn).After(d) && reservation.DateOf(s.CheckOut).After(d)
}

// Dataset is the input of every aggregate: the stays loaded for a range and
// the number of rooms in the hotel.
type Dataset struct {
	Range      DateRange
	TotalRooms int
	Stays      []Stay
}

// checkedIn returns the stays whose check-in day falls inside the range.
func (ds Dataset) checkedIn() []Stay {
	return filter(ds.Stays, func(s Stay) bool { return ds.Range.Contains(s.CheckIn) })
}

// For narrows the dataset to another range. The stays are kept as loaded.
func (ds Dataset) For(r DateRange) Dataset {
	return Dataset{Range: r, TotalRooms: ds.TotalRooms, Stays: ds.Stays}
}

func filter(stays []Stay, keep func(Stay) bool) []Stay {
	out := make([]Stay, 0, len(stays))
	for _, s := range stays {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func paid(stays []Stay) []Stay {
	return filter(stays, Stay.IsPaid)
}

func notCancelled(stays []Stay) []Stay {
	return filter(stays, func(s Stay) bool { return !s.IsCancelled() })
}

func sumRevenue(stays []Stay) money.Money {
	var total money.Money
	for _, s := range stays {
		total = total.Add(s.TotalPrice)
	}
	return total
}

func sumNights(stays []Stay) int {
	n := 0
	for _, s := range stays {
		n += s.Nights()
	}
	return n
}
