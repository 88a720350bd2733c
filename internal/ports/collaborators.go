// Package ports declares the collaborators the scheduling core drives.
// Implementations live outside the core (see adapters/memworld for an in-memory one).
package ports

import "github.com/ZanzyTHEbar/drivesim/internal/domain"

//go:generate go tool mockgen -destination=mocks/collaborators.go -package=mocks . World,SpawnPointNetwork,EventDetectorNetwork,ManipulatorNetwork,ObservationNetwork,DataBuffer,EventNetwork,Agent,Component,Trigger,EventPublisher

// World is the simulated environment agents live in.
type World interface {
	// PublishGlobalData makes world data of instant now visible to agents.
	PublishGlobalData(now int) bool
	// SyncGlobalData applies the changes agents made during instant now.
	SyncGlobalData(now int) bool
	// RemovedAgentsInPreviousTimestep returns ids of agents destroyed since the last call.
	RemovedAgentsInPreviousTimestep() []int
}

// SpawnPointNetwork creates agents.
type SpawnPointNetwork interface {
	// TriggerPreRunSpawnZones populates the scenario before the first instant.
	TriggerPreRunSpawnZones() bool
	// TriggerRuntimeSpawnPoints spawns agents due at now.
	TriggerRuntimeSpawnPoints(now int) bool
	// ConsumeNewAgents returns agents spawned since the last call.
	ConsumeNewAgents() []Agent
}

// Trigger is a framework module run once per framework tick.
type Trigger interface {
	Trigger(now int) bool
}

// EventDetectorNetwork lists registered event detectors.
type EventDetectorNetwork interface {
	EventDetectors() []Trigger
}

// ManipulatorNetwork lists registered manipulators.
type ManipulatorNetwork interface {
	Manipulators() []Trigger
}

// ObservationNetwork feeds observation modules.
type ObservationNetwork interface {
	// UpdateTimeStep samples instant now. Observers may set the end condition on result.
	UpdateTimeStep(now int, result *domain.RunResult) bool
}

// DataBuffer holds per-timestep data shared between modules.
type DataBuffer interface {
	ClearTimeStep()
}

// EventNetwork holds events raised during one cycle.
type EventNetwork interface {
	Clear()
}

// Agent is one simulated traffic participant. The scheduler only keeps its id.
type Agent interface {
	ID() int
	Components() []Component
	// BindClock gives the agent read access to the run clock.
	BindClock(clock domain.Clock)
}

// LinkTarget is a component consuming the value of an output link.
type LinkTarget struct {
	Component Component
	LinkID    int
}

// OutputLink is an output channel of a component.
type OutputLink struct {
	ID      int
	Targets []LinkTarget
}

// Component is one periodic unit of agent behavior.
type Component interface {
	Name() string
	Priority() int
	CycleTime() int
	OffsetTime() int
	ResponseTime() int
	// Init marks components that run once after spawn.
	Init() bool
	OutputLinks() []OutputLink

	TriggerCycle(now int) bool
	AcquireOutputData(linkID, now int) bool
	UpdateInputData(linkID, now int) bool
}

// EventPublisher receives run lifecycle events.
type EventPublisher interface {
	Publish(event domain.Event)
}
