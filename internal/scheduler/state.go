package scheduler

// State is the phase a Scheduler is executing.
type State string

const (
	StateIdle           State = "idle"
	StateBootstrap      State = "bootstrap"
	StateSpawning       State = "spawning"
	StatePreAgent       State = "pre_agent"
	StateAgentExecution State = "agent_execution"
	StateSynchronize    State = "synchronize"
	StateFinalize       State = "finalize"
	StateTerminated     State = "terminated"
)

// TracePoint describes one executed instant: how many tasks ran and the
// horizon window it was executed in.
type TracePoint struct {
	Instant int
	Tasks   int
	Lower   int
	Upper   int
}

// Stats counts what a run executed.
type Stats struct {
	Instants      int
	TasksExecuted int
	AgentsSpawned int
	AgentsRemoved int
}
