package domain

import "time"

// Topics published while a run progresses.
const (
	TopicRunStarted   = "run.started"
	TopicAgentSpawned = "agent.spawned"
	TopicAgentRemoved = "agent.removed"
	TopicRunCompleted = "run.completed"
	TopicRunFailed    = "run.failed"
)

// Event represents a message passed through the event bus.
type Event struct {
	Topic     string    // e.g. "agent.spawned", "run.failed"
	RunID     string    // Experiment run the event belongs to, may be empty
	Instant   int       // Simulation time of the event
	Data      any       // Payload of the event
	Timestamp time.Time // Wall clock time the event was created
}

// NewEvent creates a new event.
func NewEvent(topic string, instant int, data any) Event {
	return Event{
		Topic:     topic,
		Instant:   instant,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// AgentEvent is the payload of agent lifecycle events.
type AgentEvent struct {
	AgentID int
}

// RunSummary is the payload of run.completed and run.failed.
type RunSummary struct {
	EndTime       int
	Instants      int
	TasksExecuted int
	Err           error
}
