package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the snapshot refresh on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	refresh *RefreshService
	ctx     context.Context
}

// NewScheduler creates a new Scheduler. The context bounds every
// scheduled refresh.
func NewScheduler(ctx context.Context, refresh *RefreshService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		refresh: refresh,
		ctx:     ctx,
	}
}

// Register adds the refresh job with the given cron spec (with seconds,
// e.g. "0 */5 * * * *" for every five minutes).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runRefresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

// RunNow executes the refresh immediately, for boot-time priming.
func (s *Scheduler) RunNow() {
	s.runRefresh()
}

func (s *Scheduler) runRefresh() {
	if err := s.refresh.Refresh(s.ctx); err != nil {
		slog.Error("scheduled refresh failed", "error", err)
	}
}
