package uptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedule_IsOpen(t *testing.T) {
	monday := func(h, m, s int) time.Time {
		return time.Date(2023, 1, 23, h, m, s, 0, time.UTC)
	}
	tuesday := monday(10, 0, 0).AddDate(0, 0, 1)

	schedule := NewSchedule([]BusinessHours{
		{StoreID: "mon-only", DayOfWeek: 0, Start: 9 * time.Hour, End: 17 * time.Hour},
		{StoreID: "split", DayOfWeek: 0, Start: 8 * time.Hour, End: 11 * time.Hour},
		{StoreID: "split", DayOfWeek: 0, Start: 14 * time.Hour, End: 18*time.Hour + 30*time.Minute},
	})

	tests := []struct {
		name  string
		store string
		local time.Time
		want  bool
	}{
		{name: "no hours means always open", store: "unknown", local: monday(3, 0, 0), want: true},
		{name: "exactly at start is included", store: "mon-only", local: monday(9, 0, 0), want: true},
		{name: "exactly at end is included", store: "mon-only", local: monday(17, 0, 0), want: true},
		{name: "one second before start", store: "mon-only", local: monday(8, 59, 59), want: false},
		{name: "one second after end", store: "mon-only", local: monday(17, 0, 1), want: false},
		{name: "other weekday is closed", store: "mon-only", local: tuesday, want: false},
		{name: "first window", store: "split", local: monday(10, 0, 0), want: true},
		{name: "gap between windows", store: "split", local: monday(12, 0, 0), want: false},
		{name: "second window", store: "split", local: monday(18, 30, 0), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, schedule.IsOpen(tc.store, tc.local))
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	monday := time.Date(2023, 1, 23, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 0, DayOfWeek(monday))
	require.Equal(t, 5, DayOfWeek(monday.AddDate(0, 0, 5)))
	require.Equal(t, 6, DayOfWeek(monday.AddDate(0, 0, 6)))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input     string
		want      time.Duration
		wantError bool
	}{
		{input: "09:00", want: 9 * time.Hour},
		{input: "23:59:59", want: 23*time.Hour + 59*time.Minute + 59*time.Second},
		{input: " 00:10:00 ", want: 10 * time.Minute},
		{input: "25:00", wantError: true},
		{input: "noon", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseClock(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want, mustParse(t, FormatClock(got)))
		})
	}
}

func mustParse(t *testing.T, s string) time.Duration {
	t.Helper()
	d, err := ParseClock(s)
	require.NoError(t, err)
	return d
}
