package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
)

// Engine runs one report computation end to end: load, compute, serialize,
// and record the outcome on the job.
type Engine struct {
	source    storage.ObservationSource
	jobs      storage.JobStore
	estimator *uptime.Estimator
}

// NewEngine creates an engine. fallbackZone localizes stores without a
// timezone record; empty means uptime.DefaultTimezone.
func NewEngine(source storage.ObservationSource, jobs storage.JobStore, fallbackZone string) *Engine {
	if source == nil {
		panic("report: NewEngine requires a non-nil ObservationSource")
	}
	if jobs == nil {
		panic("report: NewEngine requires a non-nil JobStore")
	}
	return &Engine{
		source:    source,
		jobs:      jobs,
		estimator: uptime.NewEstimator(fallbackZone),
	}
}

// Run computes the report for jobID and moves the job to complete or failed.
// It never panics; every failure ends up on the job record.
func (e *Engine) Run(ctx context.Context, jobID string) {
	start := time.Now()

	payload, stores, err := e.compute(ctx)
	if err != nil {
		slog.Error("[Engine] Report run failed", "report_id", jobID, "error", err)
		if ferr := e.jobs.FailJob(ctx, jobID, err.Error()); ferr != nil {
			slog.Error("[Engine] Failed to mark report failed", "report_id", jobID, "error", ferr)
		}
		return
	}

	if err := e.jobs.CompleteJob(ctx, jobID, payload); err != nil {
		if errors.Is(err, storage.ErrJobFinished) {
			slog.Warn("[Engine] Report already finished, result dropped", "report_id", jobID)
			return
		}
		slog.Error("[Engine] Failed to store report", "report_id", jobID, "error", err)
		return
	}

	slog.Info("[Engine] Report complete",
		"report_id", jobID,
		"stores", stores,
		"duration", time.Since(start),
	)
}

func (e *Engine) compute(ctx context.Context) (payload string, stores int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report computation panicked: %v", r)
		}
	}()

	ds, err := LoadDataset(ctx, e.source)
	if err != nil {
		return "", 0, err
	}
	slog.Debug("[Engine] Dataset loaded",
		"observations", len(ds.Observations),
		"business_hours", len(ds.BusinessHours),
		"timezones", len(ds.Timezones),
	)

	rep := e.estimator.Compute(ds)
	if rep.Empty {
		return "", 0, nil
	}

	payload, err = SerializeCSV(rep.Stores)
	if err != nil {
		return "", 0, err
	}
	return payload, len(rep.Stores), nil
}
