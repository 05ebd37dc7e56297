// Package scheduler runs the background housekeeping jobs: keeping the
// live-session gauge current and logging a daily activity summary.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/fitclub/wellness-api/interfaces"
	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/metrics"
)

var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler drives the periodic jobs against the session store.
type Scheduler struct {
	store     interfaces.SessionStore
	scheduler *gocron.Scheduler
}

// NewScheduler creates a scheduler bound to a session store.
func NewScheduler(store interfaces.SessionStore) *Scheduler {
	return &Scheduler{
		store:     store,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start registers the jobs and runs the scheduler asynchronously.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Minute().Do(s.refreshGauge); err != nil {
		return fmt.Errorf("failed to schedule session gauge refresh: %w", err)
	}

	if _, err := s.scheduler.Every(1).Day().At("06:00").Do(s.logDailySummary); err != nil {
		return fmt.Errorf("failed to schedule daily summary: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) refreshGauge() {
	metrics.SessionsActive.Set(float64(s.store.Count()))
}

func (s *Scheduler) logDailySummary() {
	logging.Info("Daily session summary", "live_sessions", s.store.Count())
}
