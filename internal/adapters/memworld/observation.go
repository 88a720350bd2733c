package memworld

import (
	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// Sample is the state of the world observed at one framework tick.
type Sample struct {
	Time       int   `json:"time"`
	LiveAgents []int `json:"liveAgents"`
}

// Observations samples the world and decides when a run ends early.
type Observations struct {
	world   *World
	endAt   *int
	endRun  *bool
	samples []Sample
}

var _ ports.ObservationNetwork = (*Observations)(nil)

func (o *Observations) UpdateTimeStep(now int, result *domain.RunResult) bool {
	o.samples = append(o.samples, Sample{Time: now, LiveAgents: o.world.LiveAgents()})
	switch {
	case *o.endRun:
		result.SetEndCondition("end_run event")
	case o.endAt != nil && now >= *o.endAt:
		result.SetEndCondition("end time of traffic reached")
	}
	return true
}

// Samples returns every sample taken so far.
func (o *Observations) Samples() []Sample { return o.samples }
