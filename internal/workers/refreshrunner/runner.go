package refreshrunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tradelens/internal/domain"
	"tradelens/internal/metrics"
	"tradelens/internal/ports"
)

// Refresher re-enriches the cache entry a job names.
type Refresher interface {
	Refresh(ctx context.Context, job domain.RefreshJob) error
}

type Runner struct {
	queue        ports.RefreshQueue
	refresher    Refresher
	metrics      *metrics.Metrics
	log          *zap.Logger
	concurrency  int
	pollInterval time.Duration
	jobTimeout   time.Duration
}

func New(queue ports.RefreshQueue, refresher Refresher, m *metrics.Metrics, log *zap.Logger, concurrency int, pollInterval, jobTimeout time.Duration) *Runner {
	return &Runner{
		queue:        queue,
		refresher:    refresher,
		metrics:      m,
		log:          log.Named("refresh"),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		jobTimeout:   jobTimeout,
	}
}

// Run claims queued refresh jobs every poll interval and hands them to a
// fixed pool of workers. It returns once ctx is done and in-flight jobs have
// finished.
func (r *Runner) Run(ctx context.Context) {
	if r.concurrency < 1 {
		return
	}
	jobsCh := make(chan domain.RefreshJob, r.concurrency)

	var wg sync.WaitGroup
	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				r.process(ctx, idx, job)
			}
		}(i)
	}

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()
	defer wg.Wait()
	defer close(jobsCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !r.dispatch(ctx, jobsCh) {
				return
			}
		}
	}
}

// dispatch drains the queue into jobsCh. It reports false once ctx is done.
func (r *Runner) dispatch(ctx context.Context, jobsCh chan<- domain.RefreshJob) bool {
	for {
		job, found, err := r.queue.ClaimNext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			r.log.Warn("refresh job claim failed", zap.Error(err))
			return true
		}
		if !found {
			return true
		}
		select {
		case jobsCh <- job:
		case <-ctx.Done():
			// Failed jobs no longer block the key, so the next stale hit
			// enqueues it again.
			_ = r.queue.MarkFailed(context.Background(), job.ID, "shutdown before processing")
			return false
		}
	}
}

func (r *Runner) process(ctx context.Context, idx int, job domain.RefreshJob) {
	jobCtx, cancel := context.WithTimeout(ctx, r.jobTimeout)
	defer cancel()

	err := r.refresher.Refresh(jobCtx, job)
	r.metrics.RefreshJob(err)
	if err != nil {
		if merr := r.queue.MarkFailed(context.Background(), job.ID, err.Error()); merr != nil {
			r.log.Error("mark refresh job failed", zap.String("job_id", job.ID), zap.Error(merr))
		}
		r.log.Warn("refresh job failed", zap.Int("worker", idx), zap.String("job_id", job.ID), zap.Error(err))
		return
	}
	if err := r.queue.MarkCompleted(context.Background(), job.ID); err != nil {
		r.log.Error("complete refresh job", zap.Int("worker", idx), zap.String("job_id", job.ID), zap.Error(err))
	}
}

// Drain processes every queued job synchronously on the calling goroutine and
// returns how many were handled.
func (r *Runner) Drain(ctx context.Context) (int, error) {
	n := 0
	for {
		job, found, err := r.queue.ClaimNext(ctx)
		if err != nil {
			return n, err
		}
		if !found {
			return n, nil
		}
		r.process(ctx, 0, job)
		n++
	}
}
