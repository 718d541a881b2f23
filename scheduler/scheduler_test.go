package scheduler

import (
	"testing"
	"time"
)

func TestNewInvalidSpec(t *testing.T) {
	if _, err := New("not a cron spec", func() {}); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestSchedulerRunsJob(t *testing.T) {
	fired := make(chan struct{}, 1)
	s, err := New("@every 100ms", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled job never ran")
	}
}
