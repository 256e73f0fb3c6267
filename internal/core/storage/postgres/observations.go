package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storepulse/store-monitor/internal/core/uptime"
)

// LoadObservations reads every status poll. Ordering is left to the caller.
func (a *Adapter) LoadObservations(ctx context.Context) ([]uptime.Observation, error) {
	rows, err := a.stmtLoadObservations.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query store_status: %w", err)
	}
	defer rows.Close()

	var out []uptime.Observation
	for rows.Next() {
		obs, err := scanObservationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store_status: %w", err)
	}

	slog.Debug("[Postgres] Loaded observations", "count", len(out))
	return out, nil
}

// LoadBusinessHours reads every business-hours window.
func (a *Adapter) LoadBusinessHours(ctx context.Context) ([]uptime.BusinessHours, error) {
	rows, err := a.stmtLoadBusinessHours.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query business_hours: %w", err)
	}
	defer rows.Close()

	var out []uptime.BusinessHours
	for rows.Next() {
		bh, err := scanBusinessHoursRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business_hours: %w", err)
	}
	return out, nil
}

// LoadTimezones reads the store_id -> zone identifier table.
func (a *Adapter) LoadTimezones(ctx context.Context) (map[string]string, error) {
	rows, err := a.stmtLoadTimezones.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query store_timezones: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var storeID, zone string
		if err := rows.Scan(&storeID, &zone); err != nil {
			return nil, fmt.Errorf("failed to scan store_timezones row: %w", err)
		}
		out[storeID] = zone
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store_timezones: %w", err)
	}
	return out, nil
}
