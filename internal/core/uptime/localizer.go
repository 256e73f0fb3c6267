package uptime

import (
	"log/slog"
	"sync"
	"time"
	_ "time/tzdata" // zone rules must not depend on the host image
)

// DefaultTimezone is used for stores without a timezone record.
const DefaultTimezone = "America/Chicago"

// Localizer converts UTC observations to store-local wall-clock time.
// Safe for concurrent use; loaded locations are cached by identifier.
type Localizer struct {
	fallback  *time.Location
	timezones map[string]string

	mu    sync.Mutex
	zones map[string]*time.Location
}

// NewLocalizer builds a Localizer over a store_id -> zone identifier map.
// An unloadable fallback identifier degrades to UTC.
func NewLocalizer(timezones map[string]string, fallback string) *Localizer {
	loc, err := time.LoadLocation(fallback)
	if err != nil {
		slog.Warn("[Localizer] Invalid fallback timezone, using UTC", "timezone", fallback, "error", err)
		loc = time.UTC
	}
	return &Localizer{
		fallback:  loc,
		timezones: timezones,
		zones:     make(map[string]*time.Location),
	}
}

// Location resolves the zone for a store, falling back to the default zone
// when the store has no record or its identifier cannot be loaded.
func (l *Localizer) Location(storeID string) *time.Location {
	name, ok := l.timezones[storeID]
	if !ok || name == "" {
		return l.fallback
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if loc, ok := l.zones[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("[Localizer] Unknown timezone, using fallback",
			"store_id", storeID,
			"timezone", name,
			"fallback", l.fallback.String(),
		)
		loc = l.fallback
	}
	l.zones[name] = loc
	return loc
}

// Localize returns the store-local civil time of the observation.
func (l *Localizer) Localize(obs Observation) time.Time {
	return obs.TimestampUTC.In(l.Location(obs.StoreID))
}
