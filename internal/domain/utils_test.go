package domain

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRunStatsCollector_EventHandler(t *testing.T) {
	c := NewRunStatsCollector(zerolog.Nop())
	events := make(chan Event, 8)
	done := c.EventHandler(events)

	events <- NewEvent(TopicRunStarted, 0, nil)
	events <- NewEvent(TopicAgentSpawned, 0, AgentEvent{AgentID: 1})
	events <- NewEvent(TopicAgentSpawned, 100, AgentEvent{AgentID: 2})
	events <- NewEvent(TopicAgentRemoved, 200, AgentEvent{AgentID: 1})
	events <- NewEvent(TopicRunCompleted, 300, RunSummary{EndTime: 300, TasksExecuted: 12})
	events <- NewEvent(TopicRunFailed, 100, RunSummary{TasksExecuted: 3})
	close(events)
	<-done

	s := c.Stats()
	assert.Equal(t, 1, s.RunsStarted)
	assert.Equal(t, 1, s.RunsCompleted)
	assert.Equal(t, 1, s.RunsFailed)
	assert.Equal(t, 2, s.AgentsSpawned)
	assert.Equal(t, 1, s.AgentsRemoved)
	assert.Equal(t, 15, s.TasksExecuted)
}

func TestRunError_Unwrap(t *testing.T) {
	err := TaskFailure(PhaseRecurring, 100, item(Trigger, 4, 0, 100, 0, "agent4/driver"))
	assert.ErrorIs(t, err, ErrTaskFailed)
	assert.NotErrorIs(t, err, ErrHorizonExhausted)
	assert.Contains(t, err.Error(), "t=100")
	assert.Contains(t, err.Error(), "agent4/driver")
	assert.Contains(t, err.Error(), "in recurring")
}

func TestRunError_NoPhaseWithoutTask(t *testing.T) {
	err := &RunError{Kind: ErrInvalidUpdateRate, Instant: 0, Cause: errors.New("rate 0")}
	assert.ErrorIs(t, err, ErrInvalidUpdateRate)
	assert.Equal(t, "framework update rate must be positive at t=0: rate 0", err.Error())
	assert.NotContains(t, err.Error(), PhaseBootstrap.String())
}
