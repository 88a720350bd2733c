package domain

import "fmt"

// TaskKind is the scheduling category of a task.
// The declaration order is the precedence used to break ties between tasks
// sharing delay and priority, so Trigger must stay ahead of Update.
type TaskKind int

const (
	// Bootstrap tasks run once before the first instant.
	Bootstrap TaskKind = iota
	// Spawning tasks trigger runtime spawn points and clear per-timestep data.
	Spawning
	// EventDetector tasks run a registered event detector.
	EventDetector
	// Manipulator tasks run a registered manipulator.
	Manipulator
	// PreAgentSync tasks publish global world data before agents execute.
	PreAgentSync
	// Trigger tasks make a component compute its cycle.
	Trigger
	// Update tasks propagate a component's output along its links.
	Update
	// ObservationSync tasks feed observation modules for the instant.
	ObservationSync
	// WorldSync tasks synchronize world state after agents executed.
	WorldSync
	// Finalize tasks run once after the loop.
	Finalize
)

var taskKindNames = [...]string{
	Bootstrap:       "bootstrap",
	Spawning:        "spawning",
	EventDetector:   "event_detector",
	Manipulator:     "manipulator",
	PreAgentSync:    "pre_agent_sync",
	Trigger:         "trigger",
	Update:          "update",
	ObservationSync: "observation_sync",
	WorldSync:       "world_sync",
	Finalize:        "finalize",
}

func (k TaskKind) String() string {
	if k < 0 || int(k) >= len(taskKindNames) {
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
	return taskKindNames[k]
}

// FrameworkOwner is the owner id of tasks that do not belong to an agent.
const FrameworkOwner = -1

// TaskFunc is the work carried by a task. now is the instant being executed;
// implementations must not keep it past the call.
type TaskFunc func(now int) bool

// TaskItem describes one schedulable unit of work.
// Only Delay, Priority, Kind and CycleTime take part in scheduling.
type TaskItem struct {
	Kind      TaskKind // Scheduling category
	Owner     int      // Agent id, or FrameworkOwner
	Priority  int      // Higher runs first among equal delays
	CycleTime int      // 0 runs exactly once
	Delay     int      // Offset of the first due instant from time zero
	Label     string   // Human readable origin, used in logs and errors
	Run       TaskFunc
}

// NewTaskItem creates a task item.
func NewTaskItem(kind TaskKind, owner, priority, cycleTime, delay int, label string, run TaskFunc) TaskItem {
	return TaskItem{
		Kind:      kind,
		Owner:     owner,
		Priority:  priority,
		CycleTime: cycleTime,
		Delay:     delay,
		Label:     label,
		Run:       run,
	}
}

// Periodic reports whether the task repeats every CycleTime.
func (t TaskItem) Periodic() bool { return t.CycleTime > 0 }

// DueAt reports whether the task must run at instant now.
// One-shot tasks are always due; their container removes them after one pull.
func (t TaskItem) DueAt(now int) bool {
	if !t.Periodic() {
		return true
	}
	return now >= t.Delay && (now-t.Delay)%t.CycleTime == 0
}

// Execute runs the task at now. A task without work fails.
func (t TaskItem) Execute(now int) bool {
	if t.Run == nil {
		return false
	}
	return t.Run(now)
}

// Less reports whether t must run before other.
// Primary sort by Delay, secondary by Priority (higher first), then by kind precedence.
func (t TaskItem) Less(other TaskItem) bool {
	if t.Delay != other.Delay {
		return t.Delay < other.Delay
	}
	if t.Priority != other.Priority {
		return t.Priority > other.Priority
	}
	return t.Kind < other.Kind
}

func (t TaskItem) String() string {
	return fmt.Sprintf("%s(owner=%d prio=%d cycle=%d delay=%d %s)",
		t.Kind, t.Owner, t.Priority, t.CycleTime, t.Delay, t.Label)
}
