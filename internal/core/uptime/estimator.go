package uptime

import (
	"sort"
	"time"
)

// Report is the outcome of one computation over a dataset.
type Report struct {
	// Empty is set when the unfiltered observation set had no rows at all.
	Empty       bool
	CurrentTime time.Time
	// Stores is ordered ascending by StoreID.
	Stores []StoreResult
}

// Estimator turns sparse status polls into trailing-window uptime/downtime.
//
// Status between two consecutive polls is the status of the earlier poll
// (last observation carried forward). Only polls inside business hours take
// part in the extrapolation.
type Estimator struct {
	fallbackZone string
}

// NewEstimator creates an estimator that localizes stores without a timezone
// record to fallbackZone.
func NewEstimator(fallbackZone string) *Estimator {
	if fallbackZone == "" {
		fallbackZone = DefaultTimezone
	}
	return &Estimator{fallbackZone: fallbackZone}
}

// Compute runs localize → filter → estimate over the dataset.
// The input slice is not modified.
func (e *Estimator) Compute(ds Dataset) Report {
	localizer := NewLocalizer(ds.Timezones, e.fallbackZone)

	all := make([]Observation, len(ds.Observations))
	for i, o := range ds.Observations {
		o.LocalTime = localizer.Localize(o)
		all[i] = o
	}

	// current_time comes from the unfiltered set so that stores whose polls
	// are all outside business hours still move the anchor for everyone.
	current, ok := CurrentTime(all)
	if !ok {
		return Report{Empty: true}
	}

	schedule := NewSchedule(ds.BusinessHours)
	byStore := make(map[string][]Observation)
	for _, o := range all {
		if !schedule.IsOpen(o.StoreID, o.LocalTime) {
			continue
		}
		byStore[o.StoreID] = append(byStore[o.StoreID], o)
	}

	storeIDs := make([]string, 0, len(byStore))
	for id := range byStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	w := TrailingWindows(current)
	results := make([]StoreResult, 0, len(storeIDs))
	for _, id := range storeIDs {
		series := byStore[id]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].LocalTime.Before(series[j].LocalTime)
		})
		for i := 1; i < len(series); i++ {
			series[i].PrevStatus = series[i-1].Status
		}
		results = append(results, EstimateStore(id, series, w))
	}

	return Report{CurrentTime: current, Stores: results}
}

// EstimateStore accumulates one store's buckets from its filtered series,
// which must be sorted ascending by LocalTime.
//
// Hour buckets accumulate in minutes, day buckets and weekly downtime in
// hours. Weekly uptime comes from a second pass and is not symmetric with
// weekly downtime by construction.
func EstimateStore(storeID string, series []Observation, w Windows) StoreResult {
	res := StoreResult{StoreID: storeID}

	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		active := prev.Status == StatusActive

		if curr.LocalTime.After(w.HourStart) {
			if d := Overlap(prev.LocalTime, curr.LocalTime, w.HourStart, w.Current); d > 0 {
				if active {
					res.UptimeLastHour += d.Minutes()
				} else {
					res.DowntimeLastHour += d.Minutes()
				}
			}
		}

		if d := Overlap(prev.LocalTime, curr.LocalTime, w.DayStart, w.Current); d > 0 {
			if active {
				res.UptimeLastDay += d.Hours()
			} else {
				res.DowntimeLastDay += d.Hours()
			}
		}

		if d := Overlap(prev.LocalTime, curr.LocalTime, w.WeekStart, w.Current); d > 0 && !active {
			res.DowntimeLastWeek += d.Hours()
		}
	}

	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		if prev.Status != StatusActive || !curr.LocalTime.After(w.WeekStart) {
			continue
		}
		res.UptimeLastWeek += Overlap(prev.LocalTime, curr.LocalTime, w.WeekStart, w.Current).Hours()
	}

	return res
}
