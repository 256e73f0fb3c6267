package report

import (
	"context"
	"fmt"

	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/uptime"
	"golang.org/x/sync/errgroup"
)

// LoadDataset reads the three report inputs concurrently.
// The first failing load cancels the others.
func LoadDataset(ctx context.Context, source storage.ObservationSource) (uptime.Dataset, error) {
	var ds uptime.Dataset

	g, gctx := errgroup.WithContext(ctx)
	goLoad(g, "observations", func() (err error) {
		ds.Observations, err = source.LoadObservations(gctx)
		return err
	})
	goLoad(g, "business hours", func() (err error) {
		ds.BusinessHours, err = source.LoadBusinessHours(gctx)
		return err
	})
	goLoad(g, "timezones", func() (err error) {
		ds.Timezones, err = source.LoadTimezones(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return uptime.Dataset{}, err
	}
	return ds, nil
}

// goLoad runs load on g, turning a panic into an error so it reaches the
// caller's goroutine instead of crashing the process.
func goLoad(g *errgroup.Group, what string, load func() error) {
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("load %s: panic: %v", what, r)
			}
		}()
		if err := load(); err != nil {
			return fmt.Errorf("load %s: %w", what, err)
		}
		return nil
	})
}
