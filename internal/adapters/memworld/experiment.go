package memworld

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/experiment"
)

// RunReport is what one successful run observed.
type RunReport struct {
	Invocation int         `json:"invocation"`
	Seed       int64       `json:"seed"`
	RunID      string      `json:"runId"`
	EndTime    int         `json:"endTime"`
	EndReason  string      `json:"endReason,omitempty"`
	Spawned    int         `json:"spawned"`
	Lifetimes  map[int]int `json:"lifetimes"`
	Samples    []Sample    `json:"samples"`
}

// Experiment builds a fresh Sim for each invocation of an experiment and
// collects their reports. Safe for concurrent invocations.
type Experiment struct {
	traffic *Traffic
	log     zerolog.Logger

	mu      sync.Mutex
	sims    map[string]*Sim
	reports []RunReport
	done    bool
}

var _ experiment.Observer = (*Experiment)(nil)

// NewExperiment creates an experiment over traffic.
func NewExperiment(traffic *Traffic, log zerolog.Logger) *Experiment {
	return &Experiment{traffic: traffic, log: log, sims: make(map[string]*Sim)}
}

// Factory is an experiment.Factory.
func (e *Experiment) Factory(inv experiment.Invocation) (experiment.Instance, error) {
	sim := NewSim(e.traffic, inv.Seed, e.log)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return experiment.Instance{}, fmt.Errorf("experiment already finalized")
	}
	e.sims[inv.RunID] = sim
	return experiment.Instance{Network: sim.Network(), Events: sim.Events}, nil
}

// FinalizeRun stores the report of a finished run.
func (e *Experiment) FinalizeRun(inv experiment.Invocation, result *domain.RunResult) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sim, ok := e.sims[inv.RunID]
	if !ok {
		return fmt.Errorf("unknown run %s", inv.RunID)
	}
	delete(e.sims, inv.RunID)
	e.reports = append(e.reports, RunReport{
		Invocation: inv.Index,
		Seed:       inv.Seed,
		RunID:      inv.RunID,
		EndTime:    result.EndTime(),
		EndReason:  result.EndReason(),
		Spawned:    len(sim.World.spawned),
		Lifetimes:  sim.World.Lifetimes(),
		Samples:    sim.Observations.Samples(),
	})
	return nil
}

// FinalizeAll orders the reports by invocation and releases remaining sims.
func (e *Experiment) FinalizeAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done = true
	clear(e.sims)
	slices.SortFunc(e.reports, func(a, b RunReport) int { return a.Invocation - b.Invocation })
	return nil
}

// Reports returns the reports of successful runs.
func (e *Experiment) Reports() []RunReport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.reports)
}
