package domain

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RunStats is a snapshot of a RunStatsCollector.
type RunStats struct {
	RunsStarted   int
	RunsCompleted int
	RunsFailed    int
	AgentsSpawned int
	AgentsRemoved int
	TasksExecuted int
	Uptime        time.Duration
}

// RunStatsCollector collects statistics from run lifecycle events.
type RunStatsCollector struct {
	stats     RunStats
	mu        sync.RWMutex
	startTime time.Time
	log       zerolog.Logger
}

// NewRunStatsCollector creates a new RunStatsCollector.
func NewRunStatsCollector(log zerolog.Logger) *RunStatsCollector {
	return &RunStatsCollector{
		startTime: time.Now(),
		log:       log.With().Str("component", "stats").Logger(),
	}
}

// Record updates statistics from a single event.
func (c *RunStatsCollector) Record(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch event.Topic {
	case TopicRunStarted:
		c.stats.RunsStarted++
	case TopicAgentSpawned:
		c.stats.AgentsSpawned++
	case TopicAgentRemoved:
		c.stats.AgentsRemoved++
	case TopicRunCompleted:
		c.stats.RunsCompleted++
		if s, ok := event.Data.(RunSummary); ok {
			c.stats.TasksExecuted += s.TasksExecuted
		}
	case TopicRunFailed:
		c.stats.RunsFailed++
		if s, ok := event.Data.(RunSummary); ok {
			c.stats.TasksExecuted += s.TasksExecuted
		}
	}
}

// Stats returns the current statistics
func (c *RunStatsCollector) Stats() RunStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Uptime = time.Since(c.startTime)
	return s
}

// PrintStats logs the current statistics
func (c *RunStatsCollector) PrintStats() {
	s := c.Stats()
	c.log.Info().
		Int("runs_started", s.RunsStarted).
		Int("runs_completed", s.RunsCompleted).
		Int("runs_failed", s.RunsFailed).
		Int("agents_spawned", s.AgentsSpawned).
		Int("agents_removed", s.AgentsRemoved).
		Int("tasks_executed", s.TasksExecuted).
		Dur("uptime", s.Uptime).
		Msg("run stats")
}

// StartStatsMonitor starts a background goroutine that periodically logs stats
func (c *RunStatsCollector) StartStatsMonitor(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.PrintStats()
			case <-stopCh:
				return
			}
		}
	}()
}

// EventHandler consumes events until the channel is closed. done is closed afterwards.
func (c *RunStatsCollector) EventHandler(events <-chan Event) (done <-chan struct{}) {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for event := range events {
			c.Record(event)
		}
	}()
	return finished
}
