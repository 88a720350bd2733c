package memworld

import (
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/drivesim/internal/ports"
	"github.com/ZanzyTHEbar/drivesim/internal/scheduler"
)

// Sim is one fresh instance of the world and its framework modules.
// Every run needs its own Sim.
type Sim struct {
	World        *World
	SpawnPoints  *SpawnPoints
	Detectors    *Detectors
	Manipulators *Manipulators
	Observations *Observations
	DataBuffer   *DataBuffer
	Events       *EventNetwork
	Seed         int64
}

// NewSim builds a Sim for traffic. seed drives spawn jitter.
func NewSim(traffic *Traffic, seed int64, log zerolog.Logger) *Sim {
	log = log.With().Str("component", "memworld").Int64("seed", seed).Logger()
	world := newWorld(log)
	buffer := newDataBuffer()
	events := &EventNetwork{}
	endRun := false

	detectors := &Detectors{}
	for _, spec := range traffic.Detectors {
		detectors.detectors = append(detectors.detectors, &detector{spec: spec, events: events})
	}

	return &Sim{
		World:        world,
		SpawnPoints:  newSpawnPoints(traffic, seed, world, buffer),
		Detectors:    detectors,
		Manipulators: &Manipulators{manipulators: []ports.Trigger{&manipulator{world: world, events: events, done: make(map[Event]bool), endRun: &endRun}}},
		Observations: &Observations{world: world, endAt: traffic.EndAt, endRun: &endRun},
		DataBuffer:   buffer,
		Events:       events,
		Seed:         seed,
	}
}

// Network returns the sim as scheduler collaborators.
func (s *Sim) Network() scheduler.Network {
	return scheduler.Network{
		World:          s.World,
		SpawnPoints:    s.SpawnPoints,
		EventDetectors: s.Detectors,
		Manipulators:   s.Manipulators,
		Observations:   s.Observations,
		DataBuffer:     s.DataBuffer,
	}
}
