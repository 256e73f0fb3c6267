package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/storepulse/store-monitor/internal/core/uptime"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999 MST",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
}

// column lists the accepted header names for one logical field.
type column []string

var (
	colStoreID   = column{"store_id"}
	colStatus    = column{"status"}
	colTimestamp = column{"timestamp_utc"}
	colDay       = column{"day_of_week", "dayofweek", "day"}
	colStart     = column{"start_time_local"}
	colEnd       = column{"end_time_local"}
	colTimezone  = column{"timezone_str", "timezone"}
)

// table reads a header-mapped CSV, so column order in the file is free.
type table struct {
	name    string
	r       *csv.Reader
	index   map[string]int
	line    int
	skipped int
}

func newTable(name string, r io.Reader, required ...column) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}

	byName := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		byName[h] = i
	}

	index := make(map[string]int, len(required))
	for _, col := range required {
		found := false
		for _, alias := range col {
			if i, ok := byName[alias]; ok {
				index[col[0]] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%s: missing column %q", name, col[0])
		}
	}

	return &table{name: name, r: cr, index: index, line: 1}, nil
}

// next returns the next record, or io.EOF.
func (t *table) next() ([]string, error) {
	record, err := t.r.Read()
	t.line++
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%s: line %d: %w", t.name, t.line, err)
	}
	return record, nil
}

func (t *table) field(record []string, col column) string {
	i := t.index[col[0]]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (t *table) skip(reason string, attrs ...any) {
	t.skipped++
	slog.Warn("[Seed] Skipping malformed row",
		append([]any{"file", t.name, "line", t.line, "reason", reason}, attrs...)...)
}

// ParseObservations reads store_status rows: store_id, status, timestamp_utc.
// It returns the valid rows and how many were skipped.
func ParseObservations(name string, r io.Reader) ([]uptime.Observation, int, error) {
	t, err := newTable(name, r, colStoreID, colStatus, colTimestamp)
	if err != nil {
		return nil, 0, err
	}

	var out []uptime.Observation
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return out, t.skipped, nil
		}
		if err != nil {
			return nil, t.skipped, err
		}

		storeID := t.field(record, colStoreID)
		if storeID == "" {
			t.skip("empty store_id")
			continue
		}
		status, ok := uptime.ParseStatus(t.field(record, colStatus))
		if !ok {
			t.skip("invalid status", "value", t.field(record, colStatus))
			continue
		}
		ts, err := ParseTimestamp(t.field(record, colTimestamp))
		if err != nil {
			t.skip("invalid timestamp_utc", "error", err)
			continue
		}

		out = append(out, uptime.Observation{StoreID: storeID, TimestampUTC: ts, Status: status})
	}
}

// ParseBusinessHours reads business_hours rows: store_id, dayOfWeek,
// start_time_local, end_time_local.
func ParseBusinessHours(name string, r io.Reader) ([]uptime.BusinessHours, int, error) {
	t, err := newTable(name, r, colStoreID, colDay, colStart, colEnd)
	if err != nil {
		return nil, 0, err
	}

	var out []uptime.BusinessHours
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return out, t.skipped, nil
		}
		if err != nil {
			return nil, t.skipped, err
		}

		storeID := t.field(record, colStoreID)
		if storeID == "" {
			t.skip("empty store_id")
			continue
		}
		day, err := strconv.Atoi(t.field(record, colDay))
		if err != nil || day < 0 || day > 6 {
			t.skip("day of week must be 0-6", "value", t.field(record, colDay))
			continue
		}
		start, err := uptime.ParseClock(t.field(record, colStart))
		if err != nil {
			t.skip("invalid start_time_local", "error", err)
			continue
		}
		end, err := uptime.ParseClock(t.field(record, colEnd))
		if err != nil {
			t.skip("invalid end_time_local", "error", err)
			continue
		}

		out = append(out, uptime.BusinessHours{StoreID: storeID, DayOfWeek: day, Start: start, End: end})
	}
}

// ParseTimezones reads timezone rows: store_id, timezone_str.
// The first row for a store wins, matching insert-if-absent.
func ParseTimezones(name string, r io.Reader) (map[string]string, int, error) {
	t, err := newTable(name, r, colStoreID, colTimezone)
	if err != nil {
		return nil, 0, err
	}

	out := make(map[string]string)
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return out, t.skipped, nil
		}
		if err != nil {
			return nil, t.skipped, err
		}

		storeID := t.field(record, colStoreID)
		zone := t.field(record, colTimezone)
		if storeID == "" || zone == "" {
			t.skip("empty store_id or timezone_str")
			continue
		}
		if _, exists := out[storeID]; exists {
			continue
		}
		out[storeID] = zone
	}
}

// ParseTimestamp accepts the dataset's "2023-01-22 12:09:39.388884 UTC" form,
// the same without a zone (read as UTC), and RFC3339.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
