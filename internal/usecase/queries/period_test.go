//go:build unit

package queries_test

import (
	"testing"
	"time"

	"hotel-management/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, queries.PresetLast7Days, queries.ParsePreset("Last7Days"))
	assert.Equal(t, queries.PresetThisYear, queries.ParsePreset(" THISYEAR "))
	assert.Equal(t, queries.PresetLast30Days, queries.ParsePreset("fortnight"))
	assert.Equal(t, queries.PresetLast30Days, queries.ParsePreset(""))
}

func TestPresetRange(t *testing.T) {
	today := day(2025, time.March, 15)

	tests := []struct {
		preset    queries.Preset
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{queries.PresetToday, today, today, 1},
		{queries.PresetYesterday, day(2025, time.March, 14), day(2025, time.March, 14), 1},
		{queries.PresetLast7Days, day(2025, time.March, 9), today, 7},
		{queries.PresetLast30Days, day(2025, time.February, 14), today, 30},
		{queries.PresetLast90Days, day(2024, time.December, 16), today, 90},
		{queries.PresetThisMonth, day(2025, time.March, 1), today, 15},
		{queries.PresetLastMonth, day(2025, time.February, 1), day(2025, time.February, 28), 28},
		{queries.PresetThisYear, day(2025, time.January, 1), today, 74},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r := tt.preset.Range(today)
			assert.Equal(t, tt.wantStart, r.Start())
			assert.Equal(t, tt.wantEnd, r.End())
			assert.Equal(t, tt.wantDays, r.Days())
		})
	}
}

func TestPresetRange_LastMonthInJanuary(t *testing.T) {
	r := queries.PresetLastMonth.Range(day(2025, time.January, 10))
	assert.Equal(t, day(2024, time.December, 1), r.Start())
	assert.Equal(t, day(2024, time.December, 31), r.End())
}
