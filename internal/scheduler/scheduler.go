// Package scheduler runs periodic maintenance jobs outside the request path.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradevault/journal-backend/internal/repository"
)

const sessionSweepSchedule = "@hourly"

// Scheduler manages background maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler with the session sweep registered: expired refresh
// sessions are deleted hourly so the session table does not grow unbounded.
func New(sessionRepo *repository.SessionRepository) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(sessionSweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := sessionRepo.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			log.Printf("session sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("session sweep removed %d expired sessions", removed)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
