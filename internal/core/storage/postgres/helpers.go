package postgres

import (
	"database/sql"
	"fmt"

	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanObservationRow(row scanner) (uptime.Observation, error) {
	var (
		obs    uptime.Observation
		status string
	)
	if err := row.Scan(&obs.StoreID, &obs.TimestampUTC, &status); err != nil {
		return obs, fmt.Errorf("failed to scan store_status row: %w", err)
	}

	parsed, ok := uptime.ParseStatus(status)
	if !ok {
		return obs, fmt.Errorf("store %s at %s: invalid status %q", obs.StoreID, obs.TimestampUTC, status)
	}
	obs.Status = parsed
	obs.TimestampUTC = obs.TimestampUTC.UTC()
	return obs, nil
}

func scanBusinessHoursRow(row scanner) (uptime.BusinessHours, error) {
	var (
		bh         uptime.BusinessHours
		start, end string
	)
	if err := row.Scan(&bh.StoreID, &bh.DayOfWeek, &start, &end); err != nil {
		return bh, fmt.Errorf("failed to scan business_hours row: %w", err)
	}

	var err error
	if bh.Start, err = uptime.ParseClock(start); err != nil {
		return bh, fmt.Errorf("store %s: invalid start_time_local %q: %w", bh.StoreID, start, err)
	}
	if bh.End, err = uptime.ParseClock(end); err != nil {
		return bh, fmt.Errorf("store %s: invalid end_time_local %q: %w", bh.StoreID, end, err)
	}
	return bh, nil
}

// scanJobRow scans a report_jobs row. report_data and error are nullable.
func scanJobRow(row scanner) (*storage.ReportJob, error) {
	var (
		job            storage.ReportJob
		status         string
		payload, cause sql.NullString
	)
	err := row.Scan(&job.ID, &status, &payload, &cause, &job.CreatedAt, &job.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report job row: %w", err)
	}

	job.Status = storage.JobStatus(status)
	job.Payload = payload.String
	job.Error = cause.String
	return &job, nil
}
