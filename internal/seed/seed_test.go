package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/storepulse/store-monitor/internal/core/storage/memory"
	"github.com/storepulse/store-monitor/internal/core/uptime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseObservations(t *testing.T) {
	input := "status,store_id,timestamp_utc\n" +
		"active,8419537941919820732,2023-01-22 12:09:39.388884 UTC\n" +
		"INACTIVE,8419537941919820732,2023-01-24 09:07:26.441407\n" +
		"sleeping,1,2023-01-24 09:07:26 UTC\n" +
		"active,2,yesterday\n" +
		"active,,2023-01-24 09:07:26 UTC\n" +
		"active,3,2023-01-24T10:00:00+01:00\n"

	rows, skipped, err := ParseObservations("store_status.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, rows, 3)

	assert.Equal(t, "8419537941919820732", rows[0].StoreID)
	assert.Equal(t, uptime.StatusActive, rows[0].Status)
	assert.True(t, rows[0].TimestampUTC.Equal(time.Date(2023, 1, 22, 12, 9, 39, 388884000, time.UTC)))
	assert.Equal(t, time.UTC, rows[0].TimestampUTC.Location())
	assert.Equal(t, uptime.StatusInactive, rows[1].Status)
	assert.True(t, rows[1].TimestampUTC.Equal(time.Date(2023, 1, 24, 9, 7, 26, 441407000, time.UTC)))
	assert.True(t, rows[2].TimestampUTC.Equal(time.Date(2023, 1, 24, 9, 0, 0, 0, time.UTC)))
}

func TestParseBusinessHours(t *testing.T) {
	input := "store_id,dayOfWeek,start_time_local,end_time_local\n" +
		"s1,0,00:00:00,23:59:59\n" +
		"s1,6,11:00,22:30\n" +
		"s1,7,11:00:00,22:00:00\n" +
		"s1,x,11:00:00,22:00:00\n" +
		"s1,2,25:00:00,22:00:00\n"

	rows, skipped, err := ParseBusinessHours("business_hours.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, []uptime.BusinessHours{
		{StoreID: "s1", DayOfWeek: 0, Start: 0, End: 23*time.Hour + 59*time.Minute + 59*time.Second},
		{StoreID: "s1", DayOfWeek: 6, Start: 11 * time.Hour, End: 22*time.Hour + 30*time.Minute},
	}, rows)
}

func TestParseTimezones_FirstRowWins(t *testing.T) {
	input := "store_id,timezone_str\n" +
		"a,America/Denver\n" +
		"a,Asia/Beirut\n" +
		"b,\n"

	zones, skipped, err := ParseTimezones("timezone_data.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, map[string]string{"a": "America/Denver"}, zones)
}

func TestParse_MissingColumn(t *testing.T) {
	_, _, err := ParseObservations("store_status.csv", strings.NewReader("store_id,status\n1,active\n"))
	require.ErrorContains(t, err, `missing column "timestamp_utc"`)
}

func TestLoader_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, StoreStatusFile, "store_id,status,timestamp_utc\n"+
		"a,active,2023-01-24 09:00:00 UTC\n"+
		"a,inactive,2023-01-24 10:00:00 UTC\n"+
		"a,inactive,2023-01-24 10:00:00 UTC\n"+
		"b,active,2023-01-24 09:30:00 UTC\n")
	writeFile(t, dir, BusinessHoursFile, "store_id,dayOfWeek,start_time_local,end_time_local\n"+
		"a,1,09:00:00,17:00:00\n")
	writeFile(t, dir, TimezonesAltFile, "store_id,timezone_str\n"+
		"a,America/New_York\n"+
		"b,UTC\n")

	store := memory.NewStore()
	loader := NewLoader(store, Options{BatchSize: 2, Quiet: true})

	summary, err := loader.Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, summary.Tables, 3)
	assert.Equal(t, TableSummary{File: StoreStatusFile, Parsed: 4, Inserted: 3}, summary.Tables[0])
	assert.Equal(t, TableSummary{File: BusinessHoursFile, Parsed: 1, Inserted: 1}, summary.Tables[1])
	assert.Equal(t, TableSummary{File: TimezonesAltFile, Parsed: 2, Inserted: 2}, summary.Tables[2])

	obs, err := store.LoadObservations(context.Background())
	require.NoError(t, err)
	assert.Len(t, obs, 3)

	// Re-running is insert-if-absent.
	summary, err = loader.Run(context.Background(), dir)
	require.NoError(t, err)
	for _, table := range summary.Tables {
		assert.Zero(t, table.Inserted, table.File)
	}
}

func TestLoader_RunSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TimezonesFile, "store_id,timezone_str\na,UTC\n")

	summary, err := NewLoader(memory.NewStore(), Options{Quiet: true}).Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, summary.Tables, 1)
	assert.Equal(t, TimezonesFile, summary.Tables[0].File)
}

type failingSeeder struct {
	*memory.Store
	err error
}

func (f failingSeeder) UpsertBusinessHours(context.Context, []uptime.BusinessHours) (int, error) {
	return 0, f.err
}

func TestLoader_RunStopsOnStorageError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BusinessHoursFile, "store_id,dayOfWeek,start_time_local,end_time_local\na,1,09:00,17:00\n")

	dbErr := errors.New("unique violation")
	_, err := NewLoader(failingSeeder{Store: memory.NewStore(), err: dbErr}, Options{Quiet: true}).
		Run(context.Background(), dir)
	require.ErrorIs(t, err, dbErr)
	require.ErrorContains(t, err, BusinessHoursFile)
}

func TestDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, StoreStatusFile, "store_id,status,timestamp_utc\na,active,2023-01-24 09:00:00 UTC\n")
	writeFile(t, dir, TimezonesFile, "store_id,timezone_str\na,UTC\n")

	ds, err := Dataset(dir)
	require.NoError(t, err)
	assert.Len(t, ds.Observations, 1)
	assert.Empty(t, ds.BusinessHours)
	assert.Equal(t, map[string]string{"a": "UTC"}, ds.Timezones)
}
