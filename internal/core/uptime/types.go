package uptime

import (
	"strings"
	"time"
)

// Status is the polled state of a store at one instant.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ParseStatus normalizes a raw status value (case-insensitive, surrounding
// whitespace ignored). Values other than active/inactive are rejected.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusActive):
		return StatusActive, true
	case string(StatusInactive):
		return StatusInactive, true
	default:
		return "", false
	}
}

// Observation is one status poll for a store.
// (StoreID, TimestampUTC) is unique. LocalTime and PrevStatus are scratch
// fields filled during a report run and never persisted.
type Observation struct {
	StoreID      string
	TimestampUTC time.Time
	Status       Status

	LocalTime  time.Time
	PrevStatus Status
}

// BusinessHours is one open window for a store on one local weekday.
// DayOfWeek uses the dataset convention: 0 = Monday ... 6 = Sunday.
// Start and End are offsets from local midnight.
type BusinessHours struct {
	StoreID   string
	DayOfWeek int
	Start     time.Duration
	End       time.Duration
}

// StoreResult holds the trailing-window aggregates for one store.
//
// UptimeLastHour and DowntimeLastHour are in minutes; every other bucket is
// in hours. UptimeLastWeek is computed by a separate pass and is not part of
// the serialized report.
type StoreResult struct {
	StoreID          string
	UptimeLastHour   float64
	UptimeLastDay    float64
	UptimeLastWeek   float64
	DowntimeLastHour float64
	DowntimeLastDay  float64
	DowntimeLastWeek float64
}

// Dataset is everything one report run reads from storage.
type Dataset struct {
	Observations  []Observation
	BusinessHours []BusinessHours
	Timezones     map[string]string
}

// DayOfWeek maps a Go weekday (Sunday = 0) onto the dataset convention
// (Monday = 0).
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// TimeOfDay returns the elapsed wall-clock time since local midnight of t.
func TimeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t), nil
}

// FormatClock renders an offset from midnight as "HH:MM:SS".
func FormatClock(d time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format("15:04:05")
}
