package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is periodic work. Its context is cancelled when the scheduler stops.
type Job func(ctx context.Context) error

// Scheduler runs jobs at fixed intervals until stopped
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new scheduler
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// Schedule runs job every interval, starting one interval from now.
// A run that is still going when the next tick fires delays that tick.
func (s *Scheduler) Schedule(name string, interval time.Duration, job Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(s.ctx); err != nil && s.ctx.Err() == nil {
					slog.Warn("Scheduled job failed", "job", name, "error", err)
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels running jobs and waits for every job goroutine to exit
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
