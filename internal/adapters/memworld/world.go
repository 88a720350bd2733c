package memworld

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// World keeps the live agents of a run, keyed by id.
type World struct {
	live      map[int]*Agent
	spawned   map[int]*Agent // every agent of the run, live or not
	removeAt  map[int]int
	lifetimes map[int]int // age of removed agents at removal
	removed   []int       // since the last RemovedAgentsInPreviousTimestep
	published int   // last instant global data was published for
	synced    int
	log       zerolog.Logger
}

var _ ports.World = (*World)(nil)

func newWorld(log zerolog.Logger) *World {
	return &World{
		live:      make(map[int]*Agent),
		spawned:   make(map[int]*Agent),
		removeAt:  make(map[int]int),
		lifetimes: make(map[int]int),
		published: -1,
		synced:    -1,
		log:       log,
	}
}

func (w *World) PublishGlobalData(now int) bool {
	w.published = now
	return true
}

// SyncGlobalData removes agents whose removal instant was reached.
func (w *World) SyncGlobalData(now int) bool {
	w.synced = now
	for _, id := range w.LiveAgents() {
		if at, ok := w.removeAt[id]; ok && at <= now {
			w.RemoveAgent(id)
		}
	}
	return true
}

func (w *World) RemovedAgentsInPreviousTimestep() []int {
	removed := w.removed
	w.removed = nil
	return removed
}

// RemoveAgent destroys a live agent. It reports false for unknown ids.
func (w *World) RemoveAgent(id int) bool {
	a, ok := w.live[id]
	if !ok {
		return false
	}
	delete(w.live, id)
	w.lifetimes[id] = a.Age()
	w.removed = append(w.removed, id)
	w.log.Debug().Int("agent", id).Int("age", w.lifetimes[id]).Msg("agent destroyed")
	return true
}

// Lifetimes returns, per spawned agent, how long it has been live: until its
// removal, or until now for agents still live.
func (w *World) Lifetimes() map[int]int {
	out := make(map[int]int, len(w.spawned))
	for id, a := range w.spawned {
		if age, removed := w.lifetimes[id]; removed {
			out[id] = age
			continue
		}
		out[id] = a.Age()
	}
	return out
}

// LiveAgents returns the ids of live agents in ascending order.
func (w *World) LiveAgents() []int {
	ids := make([]int, 0, len(w.live))
	for id := range w.live {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Agent returns a live agent.
func (w *World) Agent(id int) (*Agent, bool) {
	a, ok := w.live[id]
	return a, ok
}

// Spawned returns an agent spawned during the run, even if it was removed since.
func (w *World) Spawned(id int) (*Agent, bool) {
	a, ok := w.spawned[id]
	return a, ok
}

func (w *World) add(a *Agent) {
	w.live[a.id] = a
	w.spawned[a.id] = a
}

// SpawnPoints spawns the agents of a traffic description.
type SpawnPoints struct {
	world   *World
	buffer  *DataBuffer
	preRun  []AgentSpec
	runtime []scheduledSpawn // sorted by instant
	pending []*Agent
}

type scheduledSpawn struct {
	at   int
	spec AgentSpec
}

var _ ports.SpawnPointNetwork = (*SpawnPoints)(nil)

func newSpawnPoints(t *Traffic, seed int64, world *World, buffer *DataBuffer) *SpawnPoints {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
	sp := &SpawnPoints{world: world, buffer: buffer}
	for _, spec := range t.Agents {
		if spec.PreRun {
			sp.preRun = append(sp.preRun, spec)
			continue
		}
		at := spec.SpawnAt
		if t.SpawnJitter > 0 {
			at += rng.IntN(t.SpawnJitter + 1)
		}
		sp.runtime = append(sp.runtime, scheduledSpawn{at: at, spec: spec})
	}
	slices.SortStableFunc(sp.runtime, func(a, b scheduledSpawn) int { return a.at - b.at })
	return sp
}

func (sp *SpawnPoints) TriggerPreRunSpawnZones() bool {
	for _, spec := range sp.preRun {
		sp.spawn(spec)
	}
	sp.preRun = nil
	return true
}

// TriggerRuntimeSpawnPoints spawns every agent whose spawn instant was reached.
func (sp *SpawnPoints) TriggerRuntimeSpawnPoints(now int) bool {
	i := 0
	for ; i < len(sp.runtime) && sp.runtime[i].at <= now; i++ {
		sp.spawn(sp.runtime[i].spec)
	}
	sp.runtime = sp.runtime[i:]
	return true
}

func (sp *SpawnPoints) ConsumeNewAgents() []ports.Agent {
	agents := make([]ports.Agent, len(sp.pending))
	for i, a := range sp.pending {
		agents[i] = a
	}
	sp.pending = nil
	return agents
}

func (sp *SpawnPoints) spawn(spec AgentSpec) {
	a := newAgent(spec, sp.buffer)
	if spec.RemoveAt != nil {
		sp.world.removeAt[spec.ID] = *spec.RemoveAt
	}
	sp.world.add(a)
	sp.pending = append(sp.pending, a)
}

// DataBuffer holds the output values acquired during one timestep.
type DataBuffer struct {
	values  map[string]int
	cleared int
}

var _ ports.DataBuffer = (*DataBuffer)(nil)

func newDataBuffer() *DataBuffer { return &DataBuffer{values: make(map[string]int)} }

func (b *DataBuffer) ClearTimeStep() {
	clear(b.values)
	b.cleared++
}

// Put stores the value acquired on an output link.
func (b *DataBuffer) Put(agent int, component string, link, value int) {
	b.values[bufferKey(agent, component, link)] = value
}

// Get returns a value stored during the current timestep.
func (b *DataBuffer) Get(agent int, component string, link int) (int, bool) {
	v, ok := b.values[bufferKey(agent, component, link)]
	return v, ok
}

func bufferKey(agent int, component string, link int) string {
	return fmt.Sprintf("%d/%s/%d", agent, component, link)
}
