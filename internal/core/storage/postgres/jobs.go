package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/storepulse/store-monitor/internal/core/storage"
)

// CreateJob inserts a job in the running state.
func (a *Adapter) CreateJob(ctx context.Context, id string) error {
	if _, err := a.stmtCreateJob.ExecContext(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to create report job %s: %w", id, err)
	}
	slog.Debug("[Postgres] Created report job", "report_id", id)
	return nil
}

// CompleteJob stores the payload and marks the job complete.
func (a *Adapter) CompleteJob(ctx context.Context, id string, payload string) error {
	return a.finishJob(ctx, id, storage.JobComplete, sql.NullString{String: payload, Valid: true}, sql.NullString{})
}

// FailJob records the failure reason and marks the job failed.
func (a *Adapter) FailJob(ctx context.Context, id string, reason string) error {
	return a.finishJob(ctx, id, storage.JobFailed, sql.NullString{}, sql.NullString{String: reason, Valid: true})
}

func (a *Adapter) finishJob(
	ctx context.Context,
	id string,
	status storage.JobStatus,
	payload sql.NullString,
	reason sql.NullString,
) error {
	result, err := a.stmtFinishJob.ExecContext(ctx, id, string(status), payload, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark report job %s %s: %w", id, status, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check report job %s update: %w", id, err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the job does not exist or it already finished.
	if _, err := a.GetJob(ctx, id); err != nil {
		return err
	}
	return storage.ErrJobFinished
}

// GetJob returns storage.ErrJobNotFound for unknown ids.
func (a *Adapter) GetJob(ctx context.Context, id string) (*storage.ReportJob, error) {
	job, err := scanJobRow(a.stmtGetJob.QueryRowContext(ctx, id))
	if err != nil && !errors.Is(err, storage.ErrJobNotFound) {
		return nil, fmt.Errorf("failed to get report job %s: %w", id, err)
	}
	return job, err
}

// ListJobsByStatus returns job ids in creation order.
func (a *Adapter) ListJobsByStatus(ctx context.Context, status storage.JobStatus) ([]string, error) {
	rows, err := a.stmtListJobs.QueryContext(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s report jobs: %w", status, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan report job id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report jobs: %w", err)
	}
	return ids, nil
}
