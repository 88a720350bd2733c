package scheduler

import (
	"fmt"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// Priorities of framework tasks sharing a phase. Higher runs first.
const (
	priorityClearTimeStep  = 1
	prioritySpawnPoints    = 0
	priorityPublishGlobal  = 2
	priorityEventDetector  = 1
	priorityManipulator    = 0
	priorityObservation    = 1
	prioritySyncGlobalData = 0
)

// Network groups the framework collaborators of a run.
type Network struct {
	World          ports.World
	SpawnPoints    ports.SpawnPointNetwork
	EventDetectors ports.EventDetectorNetwork
	Manipulators   ports.ManipulatorNetwork
	Observations   ports.ObservationNetwork
	DataBuffer     ports.DataBuffer
}

func (n Network) validate() error {
	switch {
	case n.World == nil:
		return fmt.Errorf("world is required")
	case n.SpawnPoints == nil:
		return fmt.Errorf("spawn point network is required")
	case n.EventDetectors == nil:
		return fmt.Errorf("event detector network is required")
	case n.Manipulators == nil:
		return fmt.Errorf("manipulator network is required")
	case n.Observations == nil:
		return fmt.Errorf("observation network is required")
	case n.DataBuffer == nil:
		return fmt.Errorf("data buffer is required")
	}
	return nil
}

// TaskBuilder derives the fixed framework tasks of a run. It only reads the
// collaborators while building; the tasks call them when executed.
type TaskBuilder struct {
	rate   int
	net    Network
	result *domain.RunResult
}

// NewTaskBuilder creates a builder for framework tasks repeating every rate.
func NewTaskBuilder(rate int, net Network, result *domain.RunResult) *TaskBuilder {
	return &TaskBuilder{rate: rate, net: net, result: result}
}

// BootstrapTasks triggers the pre-run spawn zones once.
func (b *TaskBuilder) BootstrapTasks() []domain.TaskItem {
	spawn := b.net.SpawnPoints
	return []domain.TaskItem{
		framework(domain.Bootstrap, 0, 0, "prerun_spawn", func(int) bool {
			return spawn.TriggerPreRunSpawnZones()
		}),
	}
}

// SpawningTasks clears per-timestep data and triggers runtime spawn points every tick.
func (b *TaskBuilder) SpawningTasks() []domain.TaskItem {
	buffer := b.net.DataBuffer
	return []domain.TaskItem{
		framework(domain.Spawning, priorityClearTimeStep, b.rate, "clear_timestep", func(int) bool {
			buffer.ClearTimeStep()
			return true
		}),
		framework(domain.Spawning, prioritySpawnPoints, b.rate, "runtime_spawn", b.net.SpawnPoints.TriggerRuntimeSpawnPoints),
	}
}

// PreAgentTasks publishes global data, then runs detectors and manipulators every tick.
func (b *TaskBuilder) PreAgentTasks() []domain.TaskItem {
	tasks := []domain.TaskItem{
		framework(domain.PreAgentSync, priorityPublishGlobal, b.rate, "publish_global_data", b.net.World.PublishGlobalData),
	}
	return append(tasks, b.detectorAndManipulatorTasks(b.rate)...)
}

// SynchronizeTasks updates observations, then syncs world state every tick.
func (b *TaskBuilder) SynchronizeTasks() []domain.TaskItem {
	observations, result := b.net.Observations, b.result
	return []domain.TaskItem{
		framework(domain.ObservationSync, priorityObservation, b.rate, "observation", func(now int) bool {
			return observations.UpdateTimeStep(now, result)
		}),
		framework(domain.WorldSync, prioritySyncGlobalData, b.rate, "sync_global_data", b.net.World.SyncGlobalData),
	}
}

// FinalizeTasks runs detectors and manipulators once more at the end of the run.
func (b *TaskBuilder) FinalizeTasks() []domain.TaskItem {
	return b.detectorAndManipulatorTasks(0)
}

func (b *TaskBuilder) detectorAndManipulatorTasks(cycle int) []domain.TaskItem {
	var tasks []domain.TaskItem
	for i, detector := range b.net.EventDetectors.EventDetectors() {
		tasks = append(tasks, framework(domain.EventDetector, priorityEventDetector, cycle,
			fmt.Sprintf("event_detector/%d", i), detector.Trigger))
	}
	for i, manipulator := range b.net.Manipulators.Manipulators() {
		tasks = append(tasks, framework(domain.Manipulator, priorityManipulator, cycle,
			fmt.Sprintf("manipulator/%d", i), manipulator.Trigger))
	}
	return tasks
}

func framework(kind domain.TaskKind, priority, cycle int, label string, run domain.TaskFunc) domain.TaskItem {
	return domain.NewTaskItem(kind, domain.FrameworkOwner, priority, cycle, 0, label, run)
}
