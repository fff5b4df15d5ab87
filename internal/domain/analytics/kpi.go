package analytics

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type KPICard struct {
	Title  string
	Value  string
	Change float64
	Trend  Trend
	Icon   string
	Color  string
}

// PercentageChange is rounded to one decimal. A zero baseline yields 100
// when the new value is positive and 0 otherwise.
func PercentageChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue > 0 {
			return 100
		}
		return 0
	}
	return round1((newValue - oldValue) / oldValue * 100)
}

func TrendOf(oldValue, newValue float64) Trend {
	switch {
	case newValue > oldValue:
		return TrendUp
	case newValue < oldValue:
		return TrendDown
	default:
		return TrendStable
	}
}

// KPICards compares the current range with the preceding range of equal
// length. The dataset must contain the stays of both.
func KPICards(ds Dataset) []KPICard {
	cur := Summarize(ds)
	prev := Summarize(ds.For(ds.Range.Previous()))

	card := func(title, value string, oldV, newV float64, icon, color string) KPICard {
		return KPICard{
			Title:  title,
			Value:  value,
			Change: PercentageChange(oldV, newV),
			Trend:  TrendOf(oldV, newV),
			Icon:   icon,
			Color:  color,
		}
	}

	return []KPICard{
		card("Total Revenue", "$"+formatThousands(cur.TotalRevenue.Dollars()),
			prev.TotalRevenue.Dollars(), cur.TotalRevenue.Dollars(), "revenue", "blue"),
		card("Occupancy Rate", fmt.Sprintf("%.1f%%", cur.AverageOccupancy),
			prev.AverageOccupancy, cur.AverageOccupancy, "occupancy", "green"),
		card("Total Bookings", strconv.Itoa(cur.TotalBookings),
			float64(prev.TotalBookings), float64(cur.TotalBookings), "bookings", "purple"),
		card("Average Daily Rate", fmt.Sprintf("$%.2f", cur.AverageDailyRate),
			prev.AverageDailyRate, cur.AverageDailyRate, "adr", "orange"),
		card("Total Guests", strconv.Itoa(cur.TotalGuests),
			float64(prev.TotalGuests), float64(cur.TotalGuests), "guests", "pink"),
		card("RevPAR", fmt.Sprintf("$%.2f", cur.RevPAR),
			prev.RevPAR, cur.RevPAR, "revpar", "teal"),
	}
}

var englishPrinter = message.NewPrinter(language.English)

// formatThousands renders v with no decimals and comma group separators.
func formatThousands(v float64) string {
	return englishPrinter.Sprintf("%d", int64(math.Round(v)))
}
