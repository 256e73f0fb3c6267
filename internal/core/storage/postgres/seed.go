package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/storepulse/store-monitor/internal/core/uptime"
)

// UpsertObservations inserts status polls, skipping existing (store_id, timestamp_utc).
func (a *Adapter) UpsertObservations(ctx context.Context, rows []uptime.Observation) (int, error) {
	return a.insertBatch(ctx, "store_status", queryInsertObservation, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.StoreID, r.TimestampUTC.UTC(), string(r.Status)}
	})
}

// UpsertBusinessHours inserts business-hours windows, skipping exact duplicates.
func (a *Adapter) UpsertBusinessHours(ctx context.Context, rows []uptime.BusinessHours) (int, error) {
	return a.insertBatch(ctx, "business_hours", queryInsertBusinessHours, len(rows), func(i int) []interface{} {
		r := rows[i]
		return []interface{}{r.StoreID, r.DayOfWeek, uptime.FormatClock(r.Start), uptime.FormatClock(r.End)}
	})
}

// UpsertTimezones inserts timezone records, skipping stores that already have one.
func (a *Adapter) UpsertTimezones(ctx context.Context, rows map[string]string) (int, error) {
	storeIDs := make([]string, 0, len(rows))
	for id := range rows {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)
	return a.insertBatch(ctx, "store_timezones", queryInsertTimezone, len(storeIDs), func(i int) []interface{} {
		return []interface{}{storeIDs[i], rows[storeIDs[i]]}
	})
}

// insertBatch runs one prepared insert per row inside a single transaction
// and returns how many rows were actually inserted.
func (a *Adapter) insertBatch(
	ctx context.Context,
	table string,
	query string,
	n int,
	args func(i int) []interface{},
) (int, error) {
	if n == 0 {
		return 0, nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s seed: begin tx: %w", table, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s seed: prepare insert: %w", table, err)
	}
	defer stmt.Close()

	inserted := 0
	for i := 0; i < n; i++ {
		result, err := stmt.ExecContext(ctx, args(i)...)
		if err != nil {
			return 0, fmt.Errorf("%s seed: insert row %d: %w", table, i, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%s seed: check row %d: %w", table, i, err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s seed: commit: %w", table, err)
	}

	slog.Info("[Postgres] Seeded rows", "table", table, "offered", n, "inserted", inserted)
	return inserted, nil
}
