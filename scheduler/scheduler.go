package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the collection pass on a cron schedule so snapshots and
// Kafka publishes happen even without inbound HTTP traffic.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler that runs job on the given cron spec
// (e.g. "0 * * * *" or "@every 1h").
func New(spec string, job func()) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
