package commands

import (
	"math/rand/v2"
	"strings"
	"time"

	"hotel-management/internal/usecase/shared"
)

// Reservation sample kinds accepted by PopulateReservations.
const (
	ReservationSampleMixed    = "mixed"
	ReservationSampleBusiness = "business"
	ReservationSampleVacation = "vacation"
	ReservationSampleWeekend  = "weekend"
)

var (
	generalRequests = []string{
		"Late check-in requested",
		"Early check-in if possible",
		"High floor room preferred",
		"Quiet room away from elevators",
		"Extra pillows and towels",
		"Celebrating anniversary",
		"Birthday celebration - please prepare cake",
		"Allergic to feathers - synthetic pillows needed",
		"Traveling with infant - need crib",
		"Business trip - need work desk and good WiFi",
		"First time visiting - tourist information appreciated",
		"Dietary restrictions - vegetarian meals only",
		"Airport shuttle service needed",
		"Late checkout requested",
		"Room with bathtub preferred",
		"Connecting rooms if available",
		"Ocean view preferred",
		"Ground floor due to mobility issues",
		"Pet-friendly room needed",
		"",
	}

	businessRequests = []string{
		"Need conference room access",
		"Early morning meeting - 6am wake-up call",
		"Require printing and scanning services",
		"High-speed internet essential",
		"Quiet room for conference calls",
		"Late checkout due to afternoon meetings",
		"Express laundry service needed",
		"Airport transfer required",
		"Business center access needed",
		"Meeting room for 4 people on arrival day",
	}

	vacationRequests = []string{
		"Honeymoon package - champagne and flowers",
		"Anniversary celebration",
		"Tourist information and maps needed",
		"Restaurant recommendations appreciated",
		"Pool towels and beach access",
		"Spa appointment booking assistance",
		"Family connecting rooms preferred",
		"Kids club information",
		"Late checkout for evening flight",
		"Room decoration for special occasion",
		"Romantic dinner reservation needed",
		"Day trip and excursion information",
	}
)

const weekendRequest = "Weekend getaway package"

var (
	businessEmailMarkers = []string{"@corporate", "@business", "@tech", "@consulting", "@executive"}
	leisureEmailMarkers  = []string{"@gmail", "@yahoo", "@hotmail", "@outlook"}
	businessRoomMarkers  = []string{"Executive", "Suite", "Deluxe"}
	vacationRoomMarkers  = []string{"Family", "Suite", "Double", "Honeymoon", "Deluxe"}
)

// IsReservationSampleKind reports whether kind names a generator.
func IsReservationSampleKind(kind string) bool {
	switch kind {
	case ReservationSampleMixed, ReservationSampleBusiness, ReservationSampleVacation, ReservationSampleWeekend:
		return true
	}
	return false
}

// GenerateReservations drafts count bookings from the given guests and rooms.
// Both slices must be non-empty; rooms are expected to be flagged available.
// The drafts are not checked against existing bookings.
func GenerateReservations(r *rand.Rand, kind string, count int, today time.Time, guests []shared.GuestSnapshot, rooms []shared.RoomSnapshot) []ReservationInput {
	switch kind {
	case ReservationSampleBusiness:
		return businessReservations(r, count, today, guests, rooms)
	case ReservationSampleVacation:
		return vacationReservations(r, count, today, guests, rooms)
	case ReservationSampleWeekend:
		return weekendReservations(r, count, today, guests, rooms)
	default:
		return mixedReservations(r, count, today, guests, rooms)
	}
}

func mixedReservations(r *rand.Rand, count int, today time.Time, guests []shared.GuestSnapshot, rooms []shared.RoomSnapshot) []ReservationInput {
	limit := today.AddDate(0, 3, 0)
	out := make([]ReservationInput, 0, count)
	for range count {
		g := pick(r, guests)
		rm := pick(r, rooms)

		checkIn := today.AddDate(0, 0, r.IntN(90))
		checkOut := checkIn.AddDate(0, 0, between(r, 1, 7))
		if checkOut.After(limit) {
			checkOut = limit
		}
		if !checkOut.After(checkIn) {
			checkOut = checkIn.AddDate(0, 0, 1)
		}

		out = append(out, ReservationInput{
			GuestID:         g.ID,
			RoomID:          rm.ID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			NumberOfGuests:  guestCountFor(r, rm.Type),
			SpecialRequests: pick(r, generalRequests),
		})
	}
	return out
}

func businessReservations(r *rand.Rand, count int, today time.Time, guests []shared.GuestSnapshot, rooms []shared.RoomSnapshot) []ReservationInput {
	gs := filterOr(guests, func(g shared.GuestSnapshot) bool { return containsAny(g.Email, businessEmailMarkers) })
	rs := filterOr(rooms, func(rm shared.RoomSnapshot) bool {
		return rm.Type == RoomTypeStandard || containsAny(rm.Type, businessRoomMarkers)
	})

	base := today.AddDate(0, 0, 7)
	out := make([]ReservationInput, 0, count)
	for range count {
		g := pick(r, gs)
		rm := pick(r, rs)
		checkIn := nextWeekday(base.AddDate(0, 0, r.IntN(60)))
		out = append(out, ReservationInput{
			GuestID:         g.ID,
			RoomID:          rm.ID,
			CheckIn:         checkIn,
			CheckOut:        checkIn.AddDate(0, 0, between(r, 2, 6)),
			NumberOfGuests:  between(r, 1, 3),
			SpecialRequests: pick(r, businessRequests),
		})
	}
	return out
}

func vacationReservations(r *rand.Rand, count int, today time.Time, guests []shared.GuestSnapshot, rooms []shared.RoomSnapshot) []ReservationInput {
	gs := filterOr(guests, func(g shared.GuestSnapshot) bool { return containsAny(g.Email, leisureEmailMarkers) })
	rs := filterOr(rooms, func(rm shared.RoomSnapshot) bool { return containsAny(rm.Type, vacationRoomMarkers) })

	base := today.AddDate(0, 0, 14)
	out := make([]ReservationInput, 0, count)
	for range count {
		g := pick(r, gs)
		rm := pick(r, rs)
		checkIn := nextSaturday(base.AddDate(0, 0, r.IntN(90)))

		var n int
		switch {
		case strings.Contains(rm.Type, "Family"):
			n = between(r, 3, 5)
		case strings.Contains(rm.Type, "Honeymoon"):
			n = 2
		default:
			n = between(r, 1, 4)
		}

		out = append(out, ReservationInput{
			GuestID:         g.ID,
			RoomID:          rm.ID,
			CheckIn:         checkIn,
			CheckOut:        checkIn.AddDate(0, 0, between(r, 3, 15)),
			NumberOfGuests:  n,
			SpecialRequests: pick(r, vacationRequests),
		})
	}
	return out
}

// weekendReservations books consecutive Friday-to-Sunday stays, the first
// starting no earlier than today.
func weekendReservations(r *rand.Rand, count int, today time.Time, guests []shared.GuestSnapshot, rooms []shared.RoomSnapshot) []ReservationInput {
	base := nextSaturday(today.AddDate(0, 0, 1))
	out := make([]ReservationInput, 0, count)
	for i := range count {
		g := pick(r, guests)
		rm := pick(r, rooms)
		saturday := nextSaturday(base.AddDate(0, 0, 7*i))
		out = append(out, ReservationInput{
			GuestID:         g.ID,
			RoomID:          rm.ID,
			CheckIn:         saturday.AddDate(0, 0, -1),
			CheckOut:        saturday.AddDate(0, 0, 1),
			NumberOfGuests:  between(r, 1, 3),
			SpecialRequests: weekendRequest,
		})
	}
	return out
}

// guestCountFor sizes the party by room type. Honeymoon is matched before
// the generic suite rule.
func guestCountFor(r *rand.Rand, roomType string) int {
	t := strings.ToLower(roomType)
	switch {
	case strings.Contains(t, "single"):
		return 1
	case strings.Contains(t, "double"), strings.Contains(t, "twin"):
		return between(r, 1, 3)
	case strings.Contains(t, "family"):
		return between(r, 2, 5)
	case strings.Contains(t, "honeymoon"):
		return 2
	case strings.Contains(t, "suite"):
		return between(r, 1, 4)
	default:
		return between(r, 1, 3)
	}
}

func nextWeekday(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func nextSaturday(d time.Time) time.Time {
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// filterOr keeps matching items, falling back to all of them when none match.
func filterOr[T any](xs []T, keep func(T) bool) []T {
	var out []T
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return xs
	}
	return out
}
