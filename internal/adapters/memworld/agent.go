package memworld

import (
	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// channel carries the last value acquired from an output link.
type channel struct {
	value   int
	stamp   int
	written bool
}

// Agent is an in-memory agent built from an AgentSpec.
type Agent struct {
	id         int
	components []*Component
	clock      domain.Clock
	spawnedAt  int
}

var _ ports.Agent = (*Agent)(nil)

func (a *Agent) ID() int { return a.id }

func (a *Agent) Components() []ports.Component {
	out := make([]ports.Component, len(a.components))
	for i, c := range a.components {
		out[i] = c
	}
	return out
}

// BindClock stores clock and takes its current instant as the spawn instant.
func (a *Agent) BindClock(clock domain.Clock) {
	a.clock = clock
	a.spawnedAt = clock.Now()
}

// Age returns the time since the agent was bound to the run clock, or 0 if it never was.
func (a *Agent) Age() int {
	if a.clock == nil {
		return 0
	}
	return a.clock.Now() - a.spawnedAt
}

// Component counts its cycles and moves a value along its links.
type Component struct {
	spec   ComponentSpec
	agent  *Agent
	buffer *DataBuffer
	links  []ports.OutputLink

	outputs map[int]*channel // by own output link id
	inputs  map[int]*channel // by input link id, shared with the source's output
	input   map[int]int      // last consumed value per input link

	cycles int
	value  int
}

var _ ports.Component = (*Component)(nil)

func (c *Component) Name() string                    { return c.spec.Name }
func (c *Component) Priority() int                   { return c.spec.Priority }
func (c *Component) CycleTime() int                  { return c.spec.Cycle }
func (c *Component) OffsetTime() int                 { return c.spec.Offset }
func (c *Component) ResponseTime() int               { return c.spec.Response }
func (c *Component) Init() bool                      { return c.spec.Init }
func (c *Component) OutputLinks() []ports.OutputLink { return c.links }

// TriggerCycle computes the component output: its cycle count plus the sum of its inputs.
func (c *Component) TriggerCycle(now int) bool {
	if c.spec.FailAt != nil && now >= *c.spec.FailAt {
		return false
	}
	c.cycles++
	c.value = c.cycles
	for _, v := range c.input {
		c.value += v
	}
	return true
}

func (c *Component) AcquireOutputData(linkID, now int) bool {
	ch, ok := c.outputs[linkID]
	if !ok {
		return false
	}
	ch.value, ch.stamp, ch.written = c.value, now, true
	c.buffer.Put(c.agent.id, c.spec.Name, linkID, c.value)
	return true
}

func (c *Component) UpdateInputData(linkID, now int) bool {
	ch, ok := c.inputs[linkID]
	if !ok {
		return false
	}
	if ch.written {
		c.input[linkID] = ch.value
	}
	return true
}

// Cycles returns how often TriggerCycle succeeded.
func (c *Component) Cycles() int { return c.cycles }

// Input returns the last value consumed on linkID.
func (c *Component) Input(linkID int) int { return c.input[linkID] }

func newAgent(spec AgentSpec, buffer *DataBuffer) *Agent {
	a := &Agent{id: spec.ID}
	byName := make(map[string]*Component, len(spec.Components))
	for _, cs := range spec.Components {
		c := &Component{
			spec:    cs,
			agent:   a,
			buffer:  buffer,
			outputs: make(map[int]*channel),
			inputs:  make(map[int]*channel),
			input:   make(map[int]int),
		}
		a.components = append(a.components, c)
		byName[cs.Name] = c
	}

	for _, c := range a.components {
		for _, ls := range c.spec.Outputs {
			ch := &channel{}
			c.outputs[ls.ID] = ch
			link := ports.OutputLink{ID: ls.ID}
			for _, ts := range ls.Targets {
				target := byName[ts.Component]
				target.inputs[ts.Link] = ch
				link.Targets = append(link.Targets, ports.LinkTarget{Component: target, LinkID: ts.Link})
			}
			c.links = append(c.links, link)
		}
	}
	return a
}

// Component returns the component named name.
func (a *Agent) Component(name string) (*Component, bool) {
	for _, c := range a.components {
		if c.spec.Name == name {
			return c, true
		}
	}
	return nil, false
}
