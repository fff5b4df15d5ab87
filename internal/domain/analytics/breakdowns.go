package analytics

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"

	"github.com/google/uuid"
)

type RoomTypeRevenue struct {
	RoomType   string
	Revenue    money.Money
	Bookings   int
	Percentage float64
}

func RevenueByRoomType(ds Dataset) []RoomTypeRevenue {
	stays := paid(ds.checkedIn())
	total := sumRevenue(stays)

	index := make(map[string]int)
	out := []RoomTypeRevenue{}
	for _, s := range stays {
		i, ok := index[s.RoomType]
		if !ok {
			i = len(out)
			index[s.RoomType] = i
			out = append(out, RoomTypeRevenue{RoomType: s.RoomType})
		}
		out[i].Revenue = out[i].Revenue.Add(s.TotalPrice)
		out[i].Bookings++
	}
	for i := range out {
		out[i].Percentage = round1(percent(out[i].Revenue.Dollars(), total.Dollars()))
	}
	slices.SortFunc(out, func(a, b RoomTypeRevenue) int {
		return cmp.Or(cmp.Compare(b.Revenue.Cents(), a.Revenue.Cents()), strings.Compare(a.RoomType, b.RoomType))
	})
	return out
}

type MonthPerformance struct {
	Month             string
	Year              int
	Revenue           money.Money
	Occupancy         float64
	AverageDailyRate  float64
	RevPAR            float64
	TotalBookings     int
	CancelledBookings int
}

// MonthlyPerformance walks the months of year and stops at the first month
// starting after now. Occupied nights are clipped to the month.
func MonthlyPerformance(ds Dataset, year int, now time.Time) []MonthPerformance {
	out := []MonthPerformance{}
	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		if monthStart.After(now) {
			break
		}
		nextMonth := monthStart.AddDate(0, 1, 0)
		month, _ := NewDateRange(monthStart, nextMonth.AddDate(0, 0, -1))

		stays := ds.For(month).checkedIn()
		roomNights := float64(ds.TotalRooms * month.Days())

		occupied := 0
		for _, s := range notCancelled(stays) {
			checkOut := reservation.DateOf(s.CheckOut)
			if checkOut.After(nextMonth) {
				checkOut = nextMonth
			}
			occupied += max(0, reservation.DaysBetween(s.CheckIn, checkOut))
		}

		revenue := sumRevenue(paid(stays))
		out = append(out, MonthPerformance{
			Month:             m.String(),
			Year:              year,
			Revenue:           revenue,
			Occupancy:         round1(percent(float64(occupied), roomNights)),
			AverageDailyRate:  round2(ratio(revenue.Dollars(), float64(sumNights(paid(stays))))),
			RevPAR:            round2(ratio(revenue.Dollars(), roomNights)),
			TotalBookings:     len(stays),
			CancelledBookings: len(stays) - len(notCancelled(stays)),
		})
	}
	return out
}

type RoomPerformance struct {
	RoomID        uuid.UUID
	RoomNumber    string
	RoomType      string
	Bookings      int
	Revenue       money.Money
	OccupancyRate float64
	AverageRate   float64
}

// TopRooms ranks rooms by paid revenue. Occupancy is sold nights over the
// days in the range.
func TopRooms(ds Dataset, n int) []RoomPerformance {
	type acc struct {
		perf   RoomPerformance
		nights int
	}
	index := make(map[uuid.UUID]*acc)
	var order []*acc
	for _, s := range paid(ds.checkedIn()) {
		a, ok := index[s.RoomID]
		if !ok {
			a = &acc{perf: RoomPerformance{RoomID: s.RoomID, RoomNumber: s.RoomNumber, RoomType: s.RoomType}}
			index[s.RoomID] = a
			order = append(order, a)
		}
		a.perf.Bookings++
		a.perf.Revenue = a.perf.Revenue.Add(s.TotalPrice)
		a.nights += s.Nights()
	}

	out := make([]RoomPerformance, 0, len(order))
	for _, a := range order {
		p := a.perf
		p.OccupancyRate = round1(percent(float64(a.nights), float64(ds.Range.Days())))
		p.AverageRate = round2(ratio(p.Revenue.Dollars(), float64(a.nights)))
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b RoomPerformance) int {
		return cmp.Or(cmp.Compare(b.Revenue.Cents(), a.Revenue.Cents()), strings.Compare(a.RoomNumber, b.RoomNumber))
	})
	return truncate(out, n)
}

type GuestValue struct {
	GuestID    uuid.UUID
	Name       string
	Email      string
	Phone      string
	TotalStays int
	TotalSpent money.Money
	LastVisit  time.Time
}

func TopGuests(ds Dataset, n int) []GuestValue {
	index := make(map[uuid.UUID]int)
	out := []GuestValue{}
	for _, s := range paid(ds.checkedIn()) {
		i, ok := index[s.GuestID]
		if !ok {
			i = len(out)
			index[s.GuestID] = i
			out = append(out, GuestValue{GuestID: s.GuestID, Name: s.GuestName, Email: s.GuestEmail, Phone: s.GuestPhone})
		}
		out[i].TotalStays++
		out[i].TotalSpent = out[i].TotalSpent.Add(s.TotalPrice)
		if s.CheckIn.After(out[i].LastVisit) {
			out[i].LastVisit = s.CheckIn
		}
	}
	slices.SortFunc(out, func(a, b GuestValue) int {
		return cmp.Or(cmp.Compare(b.TotalSpent.Cents(), a.TotalSpent.Cents()), strings.Compare(a.Name, b.Name))
	})
	return truncate(out, n)
}

type CountryShare struct {
	Country    string
	Count      int
	Percentage float64
}

var countryBuckets = []struct {
	country  string
	suffixes []string
}{
	{"United States", []string{".com", ".us"}},
	{"Canada", []string{".ca"}},
	{"United Kingdom", []string{".uk", ".co.uk"}},
	{"Germany", []string{".de"}},
	{"France", []string{".fr"}},
}

const otherCountries = "Others"

// CountryOf guesses a guest's country from the suffix of their email domain.
func CountryOf(email string) string {
	domain := strings.ToLower(email[strings.LastIndex(email, "@")+1:])
	for _, b := range countryBuckets {
		for _, suffix := range b.suffixes {
			if strings.HasSuffix(domain, suffix) {
				return b.country
			}
		}
	}
	return otherCountries
}

// Demographics classifies the distinct guests of the range. Empty buckets
// are dropped.
func Demographics(ds Dataset) []CountryShare {
	seen := make(map[uuid.UUID]struct{})
	counts := make(map[string]int)
	for _, s := range ds.checkedIn() {
		if _, ok := seen[s.GuestID]; ok {
			continue
		}
		seen[s.GuestID] = struct{}{}
		counts[CountryOf(s.GuestEmail)]++
	}

	out := make([]CountryShare, 0, len(counts))
	for country, n := range counts {
		out = append(out, CountryShare{
			Country:    country,
			Count:      n,
			Percentage: round1(percent(float64(n), float64(len(seen)))),
		})
	}
	slices.SortFunc(out, func(a, b CountryShare) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Country, b.Country))
	})
	return out
}

type PaymentBreakdown struct {
	TotalPaid          money.Money
	TotalPending       money.Money
	TotalRefunded      money.Money
	PaidCount          int
	PendingCount       int
	RefundedCount      int
	PaymentSuccessRate float64
}

func PaymentAnalytics(ds Dataset) PaymentBreakdown {
	var b PaymentBreakdown
	stays := ds.checkedIn()
	for _, s := range stays {
		switch s.Payment {
		case reservation.PaymentPaid:
			b.TotalPaid = b.TotalPaid.Add(s.TotalPrice)
			b.PaidCount++
		case reservation.PaymentPending:
			b.TotalPending = b.TotalPending.Add(s.TotalPrice)
			b.PendingCount++
		case reservation.PaymentRefunded:
			b.TotalRefunded = b.TotalRefunded.Add(s.TotalPrice)
			b.RefundedCount++
		}
	}
	b.PaymentSuccessRate = round1(percent(float64(b.PaidCount), float64(len(stays))))
	return b
}

type WeekdayPattern struct {
	DayOfWeek      time.Weekday
	BookingCount   int
	AverageRevenue float64
}

// BookingPatterns groups paid stays by check-in weekday, Sunday first.
// Weekdays without bookings are omitted.
func BookingPatterns(ds Dataset) []WeekdayPattern {
	var count [7]int
	var revenue [7]money.Money
	for _, s := range paid(ds.checkedIn()) {
		wd := reservation.DateOf(s.CheckIn).Weekday()
		count[wd]++
		revenue[wd] = revenue[wd].Add(s.TotalPrice)
	}
	out := []WeekdayPattern{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if count[wd] == 0 {
			continue
		}
		out = append(out, WeekdayPattern{
			DayOfWeek:      wd,
			BookingCount:   count[wd],
			AverageRevenue: round2(revenue[wd].Dollars() / float64(count[wd])),
		})
	}
	return out
}

func truncate[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
