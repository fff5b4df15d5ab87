package analytics

import (
	"time"

	"hotel-management/internal/domain/reservation"
	"hotel-management/internal/pkg/errs"
)

var ErrInvalidDateRange = errs.New("start date must not be after end date")

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := reservation.DateOf(start), reservation.DateOf(end)
	if s.After(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

// LastDays ends on today and spans n days including today.
func LastDays(today time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	e := reservation.DateOf(today)
	return DateRange{start: e.AddDate(0, 0, -(n - 1)), end: e}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Days() int {
	return reservation.DaysBetween(r.start, r.end) + 1
}

func (r DateRange) Contains(t time.Time) bool {
	d := reservation.DateOf(t)
	return !d.Before(r.start) && !d.After(r.end)
}

// EndExclusive is the day after End.
func (r DateRange) EndExclusive() time.Time {
	return r.end.AddDate(0, 0, 1)
}

// Previous is the range of equal length that ends the day before Start.
func (r DateRange) Previous() DateRange {
	n := r.Days()
	return DateRange{start: r.start.AddDate(0, 0, -n), end: r.start.AddDate(0, 0, -1)}
}

// Union covers both ranges and any gap between them.
func (r DateRange) Union(o DateRange) DateRange {
	u := r
	if o.start.Before(u.start) {
		u.start = o.start
	}
	if o.end.After(u.end) {
		u.end = o.end
	}
	return u
}

func (r DateRange) Dates() []time.Time {
	out := make([]time.Time, 0, r.Days())
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Year spans January 1st to December 31st.
func Year(year int) DateRange {
	return DateRange{
		start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
