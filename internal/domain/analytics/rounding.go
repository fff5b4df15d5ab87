package analytics

import "math"

// Midpoints round to even, matching decimal rounding in the reports the
// dashboard was built against.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.RoundToEven(v*p) / p
}

func round1(v float64) float64 { return round(v, 1) }
func round2(v float64) float64 { return round(v, 2) }

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(num, den float64) float64 {
	return ratio(num, den) * 100
}
