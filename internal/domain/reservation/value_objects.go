package reservation

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinGuests                = 1
	MaxGuests                = 10
	MaxSpecialRequestsLength = 1000
)

// StayPeriod is the half-open date range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return DaysBetween(p.checkIn, p.checkOut)
}

func (p StayPeriod) Equal(o StayPeriod) bool {
	return p.checkIn.Equal(o.checkIn) && p.checkOut.Equal(o.checkOut)
}

func (p StayPeriod) Overlaps(o StayPeriod) bool {
	return Overlaps(p.checkIn, p.checkOut, o.checkIn, o.checkOut)
}

// Occupies reports whether the room is occupied on the night starting at d.
func (p StayPeriod) Occupies(d time.Time) bool {
	d = DateOf(d)
	return !p.checkIn.After(d) && p.checkOut.After(d)
}

// Overlaps is the half-open interval test; adjacent ranges do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from a to b, negative when b is earlier.
// It works on Unix seconds so ranges longer than a time.Duration stay exact.
func DaysBetween(a, b time.Time) int {
	return int((DateOf(b).Unix() - DateOf(a).Unix()) / secondsPerDay)
}

// DateOf truncates t to midnight UTC of its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuests || n > MaxGuests {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int { return g.value }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: t}, nil
}

func (s SpecialRequests) String() string { return s.value }
func (s SpecialRequests) IsEmpty() bool  { return s.value == "" }
