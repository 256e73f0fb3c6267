package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/storepulse/store-monitor/internal/core/storage"
)

const (
	defaultWorkerCount = 4
	defaultQueueSize   = 64
)

// ErrQueueFull is returned by Submit when no more runs can be queued.
var ErrQueueFull = errors.New("report queue is full")

// Runner executes one report job. *Engine is the production implementation.
type Runner interface {
	Run(ctx context.Context, jobID string)
}

// DispatcherOptions configures the worker pool.
type DispatcherOptions struct {
	WorkerCount    int
	QueueSize      int
	RecoverOnStart bool
}

func (o DispatcherOptions) normalized() DispatcherOptions {
	n := o
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	if n.QueueSize <= 0 {
		n.QueueSize = defaultQueueSize
	}
	return n
}

// Dispatcher accepts report submissions and runs them on a fixed pool of
// workers fed by a bounded queue.
type Dispatcher struct {
	jobs   storage.JobStore
	runner Runner
	opts   DispatcherOptions
	queue  chan string
	newID  func() string

	// submitted holds ids created here while recovery is still pending, so
	// recovery does not queue them a second time. Nil once recovery is done.
	mu        sync.Mutex
	submitted map[string]struct{}
}

// NewDispatcher creates a dispatcher. Call Start to begin processing.
func NewDispatcher(jobs storage.JobStore, runner Runner, opts DispatcherOptions) *Dispatcher {
	if jobs == nil {
		panic("report: NewDispatcher requires a non-nil JobStore")
	}
	if runner == nil {
		panic("report: NewDispatcher requires a non-nil Runner")
	}
	opts = opts.normalized()
	d := &Dispatcher{
		jobs:   jobs,
		runner: runner,
		opts:   opts,
		queue:  make(chan string, opts.QueueSize),
		newID:  uuid.NewString,
	}
	if opts.RecoverOnStart {
		d.submitted = make(map[string]struct{})
	}
	return d
}

// Submit records a new running job and queues it. It returns as soon as the
// job is queued. When the queue is full the job is marked failed and
// ErrQueueFull is returned.
func (d *Dispatcher) Submit(ctx context.Context) (string, error) {
	id := d.newID()
	d.track(id)
	if err := d.jobs.CreateJob(ctx, id); err != nil {
		d.untrack(id)
		return "", fmt.Errorf("create report job: %w", err)
	}

	select {
	case d.queue <- id:
		slog.Info("[Dispatcher] Report queued", "report_id", id, "queued", len(d.queue))
		return id, nil
	default:
	}

	slog.Warn("[Dispatcher] Queue full, rejecting report", "report_id", id, "queue_size", d.opts.QueueSize)
	if err := d.jobs.FailJob(ctx, id, ErrQueueFull.Error()); err != nil {
		slog.Error("[Dispatcher] Failed to mark rejected report failed", "report_id", id, "error", err)
	}
	return "", ErrQueueFull
}

// Start runs the worker pool until ctx is cancelled.
// Workers finish their current run before exiting; jobs still queued stay
// running and are picked up by recovery on the next start.
func (d *Dispatcher) Start(ctx context.Context) error {
	slog.Info("[Dispatcher] Starting report workers",
		"workers", d.opts.WorkerCount,
		"queue_size", d.opts.QueueSize,
		"recover_on_start", d.opts.RecoverOnStart,
	)

	var wg sync.WaitGroup
	wg.Add(d.opts.WorkerCount)
	for i := 0; i < d.opts.WorkerCount; i++ {
		go func(worker int) {
			defer wg.Done()
			d.work(ctx, worker)
		}(i)
	}

	if d.opts.RecoverOnStart {
		d.recoverRunning(ctx)
	}

	<-ctx.Done()
	slog.Info("[Dispatcher] Stopping (context cancelled), waiting for in-flight reports")
	wg.Wait()
	slog.Info("[Dispatcher] All workers stopped", "left_queued", len(d.queue))
	return nil
}

func (d *Dispatcher) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-d.queue:
			slog.Debug("[Dispatcher] Worker picked report", "worker", worker, "report_id", id)
			// An in-flight run outlives shutdown so the job is not left half done.
			d.runner.Run(context.WithoutCancel(ctx), id)
		}
	}
}

// track records an id submitted before recovery has finished.
func (d *Dispatcher) track(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitted != nil {
		d.submitted[id] = struct{}{}
	}
}

func (d *Dispatcher) untrack(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.submitted, id)
}

// orphaned drops ids this process submitted itself and stops tracking.
// Jobs created after this point cannot appear in the recovery listing.
func (d *Dispatcher) orphaned(ids []string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := d.submitted[id]; !ok {
			out = append(out, id)
		}
	}
	d.submitted = nil
	return out
}

// recoverRunning re-queues jobs a previous process left in the running state.
func (d *Dispatcher) recoverRunning(ctx context.Context) {
	ids, err := d.jobs.ListJobsByStatus(ctx, storage.JobRunning)
	if err != nil {
		d.orphaned(nil)
		slog.Error("[Dispatcher] Failed to list running reports for recovery", "error", err)
		return
	}
	ids = d.orphaned(ids)
	if len(ids) == 0 {
		return
	}

	slog.Info("[Dispatcher] Recovering running reports", "count", len(ids))
	for i, id := range ids {
		select {
		case d.queue <- id:
		case <-ctx.Done():
			slog.Info("[Dispatcher] Recovery interrupted by context cancellation",
				"recovered", i,
				"remaining", len(ids)-i,
			)
			return
		}
	}
}
