package uptime

import "time"

type window struct {
	start, end time.Duration
}

// Schedule indexes business hours by store and local weekday.
type Schedule struct {
	stores map[string]map[int][]window
}

// NewSchedule indexes the given rows. Rows with an out-of-range weekday still
// mark their store as having configured hours.
func NewSchedule(rows []BusinessHours) *Schedule {
	s := &Schedule{stores: make(map[string]map[int][]window)}
	for _, r := range rows {
		days, ok := s.stores[r.StoreID]
		if !ok {
			days = make(map[int][]window)
			s.stores[r.StoreID] = days
		}
		days[r.DayOfWeek] = append(days[r.DayOfWeek], window{start: r.Start, end: r.End})
	}
	return s
}

// IsOpen decides whether a store-local instant falls inside business hours.
//
// A store with no rows at all is always open. A store with rows, but none for
// the local weekday, is closed that day. Otherwise the time of day must lie
// within [start, end] of at least one window for that weekday.
func (s *Schedule) IsOpen(storeID string, local time.Time) bool {
	days, ok := s.stores[storeID]
	if !ok {
		return true
	}
	windows := days[DayOfWeek(local)]
	if len(windows) == 0 {
		return false
	}
	tod := TimeOfDay(local)
	for _, w := range windows {
		if tod >= w.start && tod <= w.end {
			return true
		}
	}
	return false
}
