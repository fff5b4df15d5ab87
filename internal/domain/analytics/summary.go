package analytics

import (
	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"

	"github.com/google/uuid"
)

type Summary struct {
	TotalRevenue      money.Money
	TotalBookings     int
	CancellationRate  float64
	AverageOccupancy  float64
	AverageDailyRate  float64
	RevPAR            float64
	TotalGuests       int
	RepeatGuestRate   float64
	AverageStayLength float64
	TotalActiveRooms  int
}

// Summarize computes the headline statistics for stays checking in inside
// the range. Every ratio with a zero denominator is 0.
func Summarize(ds Dataset) Summary {
	stays := ds.checkedIn()
	roomNights := float64(ds.TotalRooms * ds.Range.Days())

	revenue := sumRevenue(paid(stays))
	cancelled := len(stays) - len(notCancelled(stays))
	occupiedNights := sumNights(notCancelled(stays))
	paidNights := sumNights(paid(stays))

	perGuest := make(map[uuid.UUID]int)
	checkedOut := 0
	for _, s := range stays {
		perGuest[s.GuestID]++
		if s.Status == reservation.StatusCheckedOut {
			checkedOut++
		}
	}
	repeat := 0
	for _, n := range perGuest {
		if n > 1 {
			repeat++
		}
	}

	return Summary{
		TotalRevenue:      revenue,
		TotalBookings:     len(stays),
		CancellationRate:  round1(percent(float64(cancelled), float64(len(stays)))),
		AverageOccupancy:  round1(percent(float64(occupiedNights), roomNights)),
		AverageDailyRate:  round2(ratio(revenue.Dollars(), float64(paidNights))),
		RevPAR:            round2(ratio(revenue.Dollars(), roomNights)),
		TotalGuests:       len(perGuest),
		RepeatGuestRate:   round1(percent(float64(repeat), float64(len(perGuest)))),
		AverageStayLength: round1(ratio(float64(occupiedNights), float64(checkedOut))),
		TotalActiveRooms:  ds.TotalRooms,
	}
}
