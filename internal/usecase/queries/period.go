package queries

import (
	"strings"
	"time"

	"hotel-management/internal/domain/analytics"
)

type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetLast7Days  Preset = "last7days"
	PresetLast30Days Preset = "last30days"
	PresetLast90Days Preset = "last90days"
	PresetThisMonth  Preset = "thismonth"
	PresetLastMonth  Preset = "lastmonth"
	PresetThisYear   Preset = "thisyear"
)

// DefaultReportDays is the window used when a report is asked for without dates.
const DefaultReportDays = 30

// ParsePreset is case-insensitive; unknown names fall back to last30days.
func ParsePreset(s string) Preset {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PresetToday, PresetYesterday, PresetLast7Days, PresetLast30Days,
		PresetLast90Days, PresetThisMonth, PresetLastMonth, PresetThisYear:
		return p
	default:
		return PresetLast30Days
	}
}

// Range resolves the preset against today, a calendar date.
func (p Preset) Range(today time.Time) analytics.DateRange {
	y, m, _ := today.Date()
	firstOfMonth := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	var start, end time.Time
	switch p {
	case PresetToday:
		start, end = today, today
	case PresetYesterday:
		start = today.AddDate(0, 0, -1)
		end = start
	case PresetLast7Days:
		return analytics.LastDays(today, 7)
	case PresetLast90Days:
		return analytics.LastDays(today, 90)
	case PresetThisMonth:
		start, end = firstOfMonth, today
	case PresetLastMonth:
		start = firstOfMonth.AddDate(0, -1, 0)
		end = firstOfMonth.AddDate(0, 0, -1)
	case PresetThisYear:
		start, end = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), today
	default:
		return analytics.LastDays(today, DefaultReportDays)
	}
	r, _ := analytics.NewDateRange(start, end)
	return r
}
