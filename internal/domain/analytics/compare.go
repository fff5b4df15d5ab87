package analytics

type Metric string

const (
	MetricRevenue   Metric = "revenue"
	MetricOccupancy Metric = "occupancy"
	MetricBookings  Metric = "bookings"
	MetricADR       Metric = "adr"
	MetricRevPAR    Metric = "revpar"
	MetricGuests    Metric = "guests"
)

type Change struct {
	Metric           Metric
	Difference       float64
	PercentageChange float64
	Trend            Trend
}

// Compare reports how each headline metric moved from the first summary to
// the second, using the same percentage formula as the KPI cards.
func Compare(first, second Summary) []Change {
	pairs := []struct {
		metric        Metric
		before, after float64
	}{
		{MetricRevenue, first.TotalRevenue.Dollars(), second.TotalRevenue.Dollars()},
		{MetricOccupancy, first.AverageOccupancy, second.AverageOccupancy},
		{MetricBookings, float64(first.TotalBookings), float64(second.TotalBookings)},
		{MetricADR, first.AverageDailyRate, second.AverageDailyRate},
		{MetricRevPAR, first.RevPAR, second.RevPAR},
		{MetricGuests, float64(first.TotalGuests), float64(second.TotalGuests)},
	}
	out := make([]Change, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Change{
			Metric:           p.metric,
			Difference:       round2(p.after - p.before),
			PercentageChange: PercentageChange(p.before, p.after),
			Trend:            TrendOf(p.before, p.after),
		})
	}
	return out
}
