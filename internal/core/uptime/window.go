package uptime

import "time"

// Trailing window sizes. A week is a fixed 168 hours, not a calendar week.
const (
	HourWindow = time.Hour
	DayWindow  = 24 * time.Hour
	WeekWindow = 7 * DayWindow
)

// Windows holds the trailing window boundaries for one report run.
// Every window ends at Current.
type Windows struct {
	Current   time.Time
	HourStart time.Time
	DayStart  time.Time
	WeekStart time.Time
}

// TrailingWindows derives the hour/day/week boundaries anchored at current.
// Example: TrailingWindows(11:00) → hour [10:00, 11:00], day [-1d 11:00, 11:00]
func TrailingWindows(current time.Time) Windows {
	return Windows{
		Current:   current,
		HourStart: current.Add(-HourWindow),
		DayStart:  current.Add(-DayWindow),
		WeekStart: current.Add(-WeekWindow),
	}
}

// Overlap returns how much of [from, to] falls inside [start, end].
// Never negative.
func Overlap(from, to, start, end time.Time) time.Duration {
	lo := from
	if start.After(lo) {
		lo = start
	}
	hi := to
	if end.Before(hi) {
		hi = end
	}
	if d := hi.Sub(lo); d > 0 {
		return d
	}
	return 0
}

// CurrentTime is the latest local instant across all observations.
// It reports false for an empty set.
func CurrentTime(obs []Observation) (time.Time, bool) {
	if len(obs) == 0 {
		return time.Time{}, false
	}
	current := obs[0].LocalTime
	for _, o := range obs[1:] {
		if o.LocalTime.After(current) {
			current = o.LocalTime
		}
	}
	return current, true
}
