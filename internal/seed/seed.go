package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
)

const (
	StoreStatusFile   = "store_status.csv"
	BusinessHoursFile = "business_hours.csv"
	TimezonesFile     = "timezones.csv"
	// TimezonesAltFile is the name the original dataset ships with.
	TimezonesAltFile = "timezone_data.csv"

	defaultBatchSize = 5000
)

// Options tunes a seed run.
type Options struct {
	BatchSize int
	// Quiet hides the progress bar.
	Quiet bool
}

func (o Options) normalized() Options {
	n := o
	if n.BatchSize <= 0 {
		n.BatchSize = defaultBatchSize
	}
	return n
}

// Summary reports what a seed run did per table.
type Summary struct {
	Tables []TableSummary
}

type TableSummary struct {
	File     string
	Parsed   int
	Skipped  int
	Inserted int
}

// Loader parses the CSV dataset and upserts it through a storage.Seeder.
type Loader struct {
	seeder storage.Seeder
	opts   Options
}

func NewLoader(seeder storage.Seeder, opts Options) *Loader {
	if seeder == nil {
		panic("seed: NewLoader requires a non-nil Seeder")
	}
	return &Loader{seeder: seeder, opts: opts.normalized()}
}

// Run seeds every dataset file found in dir. Missing files are skipped with a
// warning; an unreadable file or a storage error stops the run.
func (l *Loader) Run(ctx context.Context, dir string) (Summary, error) {
	var summary Summary

	slog.Info("[Seed] Loading dataset", "dir", dir)

	statusSummary, err := l.seedObservations(ctx, dir)
	if err != nil {
		return summary, err
	}
	summary.add(statusSummary)

	hoursSummary, err := l.seedBusinessHours(ctx, dir)
	if err != nil {
		return summary, err
	}
	summary.add(hoursSummary)

	zoneSummary, err := l.seedTimezones(ctx, dir)
	if err != nil {
		return summary, err
	}
	summary.add(zoneSummary)

	slog.Info("[Seed] Dataset loaded", "tables", len(summary.Tables))
	return summary, nil
}

func (s *Summary) add(t *TableSummary) {
	if t != nil {
		s.Tables = append(s.Tables, *t)
	}
}

func (l *Loader) seedObservations(ctx context.Context, dir string) (*TableSummary, error) {
	f, name, err := openFirst(dir, StoreStatusFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	rows, skipped, err := ParseObservations(name, f)
	if err != nil {
		return nil, err
	}
	inserted, err := l.upsertInBatches(ctx, name, len(rows), func(from, to int) (int, error) {
		return l.seeder.UpsertObservations(ctx, rows[from:to])
	})
	if err != nil {
		return nil, err
	}
	return &TableSummary{File: name, Parsed: len(rows), Skipped: skipped, Inserted: inserted}, nil
}

func (l *Loader) seedBusinessHours(ctx context.Context, dir string) (*TableSummary, error) {
	f, name, err := openFirst(dir, BusinessHoursFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	rows, skipped, err := ParseBusinessHours(name, f)
	if err != nil {
		return nil, err
	}
	inserted, err := l.upsertInBatches(ctx, name, len(rows), func(from, to int) (int, error) {
		return l.seeder.UpsertBusinessHours(ctx, rows[from:to])
	})
	if err != nil {
		return nil, err
	}
	return &TableSummary{File: name, Parsed: len(rows), Skipped: skipped, Inserted: inserted}, nil
}

func (l *Loader) seedTimezones(ctx context.Context, dir string) (*TableSummary, error) {
	f, name, err := openFirst(dir, TimezonesFile, TimezonesAltFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	zones, skipped, err := ParseTimezones(name, f)
	if err != nil {
		return nil, err
	}

	storeIDs := make([]string, 0, len(zones))
	for id := range zones {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	inserted, err := l.upsertInBatches(ctx, name, len(storeIDs), func(from, to int) (int, error) {
		batch := make(map[string]string, to-from)
		for _, id := range storeIDs[from:to] {
			batch[id] = zones[id]
		}
		return l.seeder.UpsertTimezones(ctx, batch)
	})
	if err != nil {
		return nil, err
	}
	return &TableSummary{File: name, Parsed: len(zones), Skipped: skipped, Inserted: inserted}, nil
}

// upsertInBatches calls upsert over [0,n) in BatchSize slices, advancing a
// progress bar per row.
func (l *Loader) upsertInBatches(ctx context.Context, name string, n int, upsert func(from, to int) (int, error)) (int, error) {
	var bar *progressbar.ProgressBar
	if l.opts.Quiet {
		bar = progressbar.DefaultSilent(int64(n), name)
	} else {
		bar = progressbar.Default(int64(n), name)
	}
	defer bar.Close()

	inserted := 0
	for from := 0; from < n; from += l.opts.BatchSize {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}
		to := from + l.opts.BatchSize
		if to > n {
			to = n
		}

		count, err := upsert(from, to)
		if err != nil {
			return inserted, fmt.Errorf("seed %s rows %d-%d: %w", name, from, to-1, err)
		}
		inserted += count
		_ = bar.Add(to - from)
	}

	slog.Info("[Seed] Table seeded", "file", name, "rows", n, "inserted", inserted)
	return inserted, nil
}

// openFirst opens the first existing file among names in dir.
// It returns a nil file when none exists.
func openFirst(dir string, names ...string) (io.ReadCloser, string, error) {
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, name, fmt.Errorf("open %s: %w", name, err)
		}
	}
	slog.Warn("[Seed] Dataset file not found, skipping", "dir", dir, "file", names[0])
	return nil, names[0], nil
}

// Dataset parses all files in dir into memory without touching storage.
// Used by tooling that wants to inspect the data first.
func Dataset(dir string) (uptime.Dataset, error) {
	var ds uptime.Dataset

	if f, name, err := openFirst(dir, StoreStatusFile); err != nil {
		return ds, err
	} else if f != nil {
		defer f.Close()
		if ds.Observations, _, err = ParseObservations(name, f); err != nil {
			return ds, err
		}
	}
	if f, name, err := openFirst(dir, BusinessHoursFile); err != nil {
		return ds, err
	} else if f != nil {
		defer f.Close()
		if ds.BusinessHours, _, err = ParseBusinessHours(name, f); err != nil {
			return ds, err
		}
	}
	if f, name, err := openFirst(dir, TimezonesFile, TimezonesAltFile); err != nil {
		return ds, err
	} else if f != nil {
		defer f.Close()
		if ds.Timezones, _, err = ParseTimezones(name, f); err != nil {
			return ds, err
		}
	}
	return ds, nil
}
