package memory

import (
	"context"
	"testing"
	"time"

	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ storage.ObservationSource = (*Store)(nil)
	_ storage.JobStore          = (*Store)(nil)
	_ storage.Seeder            = (*Store)(nil)
)

func TestStore_UpsertSkipsExistingKeys(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ts := time.Date(2023, 1, 24, 9, 0, 0, 0, time.UTC)

	n, err := s.UpsertObservations(ctx, []uptime.Observation{
		{StoreID: "a", TimestampUTC: ts, Status: uptime.StatusActive},
		{StoreID: "a", TimestampUTC: ts.Add(time.Hour), Status: uptime.StatusInactive},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Same key in another zone is still the same instant.
	n, err = s.UpsertObservations(ctx, []uptime.Observation{
		{StoreID: "a", TimestampUTC: ts.In(time.FixedZone("X", 3600)), Status: uptime.StatusInactive},
		{StoreID: "b", TimestampUTC: ts, Status: uptime.StatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	obs, err := s.LoadObservations(ctx)
	require.NoError(t, err)
	require.Len(t, obs, 3)
	assert.Equal(t, uptime.StatusActive, obs[0].Status)

	hours := []uptime.BusinessHours{{StoreID: "a", DayOfWeek: 1, Start: 9 * time.Hour, End: 17 * time.Hour}}
	n, err = s.UpsertBusinessHours(ctx, hours)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.UpsertBusinessHours(ctx, hours)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.UpsertTimezones(ctx, map[string]string{"a": "Asia/Tokyo"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.UpsertTimezones(ctx, map[string]string{"a": "UTC", "b": "UTC"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	zones, err := s.LoadTimezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "Asia/Tokyo", "b": "UTC"}, zones)
}

func TestStore_LoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.UpsertTimezones(ctx, map[string]string{"a": "UTC"})
	require.NoError(t, err)

	zones, err := s.LoadTimezones(ctx)
	require.NoError(t, err)
	zones["a"] = "Europe/Paris"

	again, err := s.LoadTimezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UTC", again["a"])
}

func TestStore_JobLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateJob(ctx, "job-1"))

	job, err := s.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, storage.JobRunning, job.Status)

	require.NoError(t, s.CompleteJob(ctx, "job-1", "store_id\n"))
	require.ErrorIs(t, s.FailJob(ctx, "job-1", "late"), storage.ErrJobFinished)
	require.ErrorIs(t, s.CompleteJob(ctx, "missing", ""), storage.ErrJobNotFound)

	job, err = s.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, storage.JobComplete, job.Status)
	assert.Equal(t, "store_id\n", job.Payload)
	assert.Empty(t, job.Error)

	_, err = s.GetJob(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrJobNotFound)
}

func TestStore_ListJobsByStatusOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.CreateJob(ctx, id))
	}
	require.NoError(t, s.FailJob(ctx, "a", "boom"))

	running, err := s.ListJobsByStatus(ctx, storage.JobRunning)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, running)

	failed, err := s.ListJobsByStatus(ctx, storage.JobFailed)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, failed)
}
