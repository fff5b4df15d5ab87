package analytics

import (
	"slices"
	"time"

	"hotel-management/internal/domain/money"
	"hotel-management/internal/domain/reservation"
)

// growthWindow is the number of days compared at each end of a revenue trend.
const growthWindow = 7

type RevenuePoint struct {
	Date        time.Time
	Revenue     money.Money
	Bookings    int
	AverageRate float64
}

type RevenueTrend struct {
	Daily          []RevenuePoint
	TotalRevenue   money.Money
	AverageRevenue float64
	GrowthRate     float64
	Direction      Trend
}

// RevenueTrendOf buckets paid stays by check-in day.
func RevenueTrendOf(ds Dataset) RevenueTrend {
	byDay := make(map[time.Time][]Stay)
	for _, s := range paid(ds.checkedIn()) {
		d := reservation.DateOf(s.CheckIn)
		byDay[d] = append(byDay[d], s)
	}

	dates := ds.Range.Dates()
	points := make([]RevenuePoint, 0, len(dates))
	var total money.Money
	for _, d := range dates {
		stays := byDay[d]
		rev := sumRevenue(stays)
		total = total.Add(rev)
		points = append(points, RevenuePoint{
			Date:        d,
			Revenue:     rev,
			Bookings:    len(stays),
			AverageRate: round2(ratio(rev.Dollars(), float64(len(stays)))),
		})
	}

	head := windowRevenue(points[:min(growthWindow, len(points))])
	tail := windowRevenue(points[max(0, len(points)-growthWindow):])

	return RevenueTrend{
		Daily:          points,
		TotalRevenue:   total,
		AverageRevenue: round2(ratio(total.Dollars(), float64(len(points)))),
		GrowthRate:     PercentageChange(head, tail),
		Direction:      TrendOf(head, tail),
	}
}

func windowRevenue(points []RevenuePoint) float64 {
	var m money.Money
	for _, p := range points {
		m = m.Add(p.Revenue)
	}
	return m.Dollars()
}

type OccupancyPoint struct {
	Date           time.Time
	OccupancyRate  float64
	AvailableRooms int
	OccupiedRooms  int
}

type OccupancyTrend struct {
	Daily            []OccupancyPoint
	AverageOccupancy float64
	PeakOccupancy    float64
	LowestOccupancy  float64
}

// OccupancyTrendOf counts, for every night in the range, the non-cancelled
// stays holding a room that night. Unlike the other aggregates it looks at
// every stay overlapping the range, not only those checking in inside it.
func OccupancyTrendOf(ds Dataset) OccupancyTrend {
	stays := filter(ds.Stays, func(s Stay) bool {
		return !s.IsCancelled() &&
			!reservation.DateOf(s.CheckIn).After(ds.Range.End()) &&
			!reservation.DateOf(s.CheckOut).Before(ds.Range.Start())
	})

	dates := ds.Range.Dates()
	points := make([]OccupancyPoint, 0, len(dates))
	rates := make([]float64, 0, len(dates))
	for _, d := range dates {
		occupied := 0
		for _, s := range stays {
			if s.occupies(d) {
				occupied++
			}
		}
		rate := round1(percent(float64(occupied), float64(ds.TotalRooms)))
		rates = append(rates, rate)
		points = append(points, OccupancyPoint{
			Date:           d,
			OccupancyRate:  rate,
			AvailableRooms: ds.TotalRooms,
			OccupiedRooms:  occupied,
		})
	}

	trend := OccupancyTrend{Daily: points}
	if len(rates) == 0 {
		return trend
	}
	sum := 0.0
	for _, r := range rates {
		sum += r
	}
	trend.AverageOccupancy = round1(sum / float64(len(rates)))
	trend.PeakOccupancy = round1(slices.Max(rates))
	trend.LowestOccupancy = round1(slices.Min(rates))
	return trend
}
