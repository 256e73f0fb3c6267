package storage

import (
	"context"
	"errors"
	"time"

	"github.com/storepulse/store-monitor/internal/core/uptime"
)

var (
	// ErrJobNotFound is returned when no report job exists for the given id.
	ErrJobNotFound = errors.New("report job not found")

	// ErrJobFinished is returned when completing or failing a job that has
	// already left the running state.
	ErrJobFinished = errors.New("report job already finished")
)

// JobStatus is the lifecycle state of a report job.
type JobStatus string

const (
	JobRunning  JobStatus = "running"
	JobComplete JobStatus = "complete"
	JobFailed   JobStatus = "failed"
)

// ReportJob is one submitted report computation.
// Payload is only meaningful when Status is complete, Error when failed.
type ReportJob struct {
	ID        string
	Status    JobStatus
	Payload   string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ObservationSource loads everything a report run reads.
type ObservationSource interface {
	// LoadObservations returns every status poll. Order is not guaranteed.
	LoadObservations(ctx context.Context) ([]uptime.Observation, error)

	LoadBusinessHours(ctx context.Context) ([]uptime.BusinessHours, error)

	// LoadTimezones returns store_id -> IANA zone identifier.
	LoadTimezones(ctx context.Context) (map[string]string, error)
}

// JobStore persists report jobs. Updates are atomic per job id.
type JobStore interface {
	CreateJob(ctx context.Context, id string) error

	// CompleteJob moves a running job to complete with its payload.
	CompleteJob(ctx context.Context, id string, payload string) error

	// FailJob moves a running job to failed with a reason.
	FailJob(ctx context.Context, id string, reason string) error

	// GetJob returns ErrJobNotFound for unknown ids.
	GetJob(ctx context.Context, id string) (*ReportJob, error)

	// ListJobsByStatus returns ids ordered by creation time.
	ListJobsByStatus(ctx context.Context, status JobStatus) ([]string, error)
}

// Seeder bulk-loads reference data. Rows whose primary key already exists are
// skipped; each method returns the number of rows actually inserted.
type Seeder interface {
	UpsertObservations(ctx context.Context, rows []uptime.Observation) (int, error)
	UpsertBusinessHours(ctx context.Context, rows []uptime.BusinessHours) (int, error)
	UpsertTimezones(ctx context.Context, rows map[string]string) (int, error)
}
