package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
)

type observationKey struct {
	storeID string
	ts      int64
}

// Store is an in-memory implementation of storage.ObservationSource,
// storage.JobStore and storage.Seeder.
// Useful for testing and for running without a database.
type Store struct {
	mu sync.RWMutex

	observations []uptime.Observation
	seen         map[observationKey]struct{}
	hours        []uptime.BusinessHours
	timezones    map[string]string
	jobs         map[string]*storage.ReportJob

	now func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		seen:      make(map[observationKey]struct{}),
		timezones: make(map[string]string),
		jobs:      make(map[string]*storage.ReportJob),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) LoadObservations(ctx context.Context) ([]uptime.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uptime.Observation, len(s.observations))
	copy(out, s.observations)
	return out, nil
}

func (s *Store) LoadBusinessHours(ctx context.Context) ([]uptime.BusinessHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uptime.BusinessHours, len(s.hours))
	copy(out, s.hours)
	return out, nil
}

func (s *Store) LoadTimezones(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.timezones))
	for id, zone := range s.timezones {
		out[id] = zone
	}
	return out, nil
}

func (s *Store) UpsertObservations(ctx context.Context, rows []uptime.Observation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, r := range rows {
		key := observationKey{storeID: r.StoreID, ts: r.TimestampUTC.UnixNano()}
		if _, exists := s.seen[key]; exists {
			continue
		}
		s.seen[key] = struct{}{}
		s.observations = append(s.observations, uptime.Observation{
			StoreID:      r.StoreID,
			TimestampUTC: r.TimestampUTC.UTC(),
			Status:       r.Status,
		})
		inserted++
	}
	return inserted, nil
}

func (s *Store) UpsertBusinessHours(ctx context.Context, rows []uptime.BusinessHours) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[uptime.BusinessHours]struct{}, len(s.hours))
	for _, h := range s.hours {
		existing[h] = struct{}{}
	}

	inserted := 0
	for _, r := range rows {
		if _, exists := existing[r]; exists {
			continue
		}
		existing[r] = struct{}{}
		s.hours = append(s.hours, r)
		inserted++
	}
	return inserted, nil
}

func (s *Store) UpsertTimezones(ctx context.Context, rows map[string]string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for id, zone := range rows {
		if _, exists := s.timezones[id]; exists {
			continue
		}
		s.timezones[id] = zone
		inserted++
	}
	return inserted, nil
}

func (s *Store) CreateJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.jobs[id] = &storage.ReportJob{
		ID:        id,
		Status:    storage.JobRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (s *Store) CompleteJob(ctx context.Context, id string, payload string) error {
	return s.finish(id, func(job *storage.ReportJob) {
		job.Status = storage.JobComplete
		job.Payload = payload
	})
}

func (s *Store) FailJob(ctx context.Context, id string, reason string) error {
	return s.finish(id, func(job *storage.ReportJob) {
		job.Status = storage.JobFailed
		job.Error = reason
	})
}

func (s *Store) finish(id string, apply func(job *storage.ReportJob)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return storage.ErrJobNotFound
	}
	if job.Status != storage.JobRunning {
		return storage.ErrJobFinished
	}
	apply(job)
	job.UpdatedAt = s.now()
	return nil
}

func (s *Store) GetJob(ctx context.Context, id string) (*storage.ReportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	if !exists {
		return nil, storage.ErrJobNotFound
	}

	// Return a copy to prevent external modification
	copy := *job
	return &copy, nil
}

func (s *Store) ListJobsByStatus(ctx context.Context, status storage.JobStatus) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*storage.ReportJob
	for _, job := range s.jobs {
		if job.Status == status {
			matched = append(matched, job)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	ids := make([]string, len(matched))
	for i, job := range matched {
		ids[i] = job.ID
	}
	return ids, nil
}
