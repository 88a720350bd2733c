package memworld

import (
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// Event is raised by a detector and acted on by the manipulator.
type Event struct {
	Source string
	Action string
	Agent  int
	At     int
}

// EventNetwork collects the events of one cycle.
type EventNetwork struct {
	events []Event
}

var _ ports.EventNetwork = (*EventNetwork)(nil)

func (n *EventNetwork) Add(e Event) { n.events = append(n.events, e) }

// Events returns the events raised in the current cycle.
func (n *EventNetwork) Events() []Event { return n.events }

func (n *EventNetwork) Clear() { n.events = n.events[:0] }

// detector fires its event once, at the first trigger at or after its instant.
type detector struct {
	spec   DetectorSpec
	events *EventNetwork
	fired  bool
}

func (d *detector) Trigger(now int) bool {
	if d.fired || now < d.spec.At {
		return true
	}
	d.fired = true
	d.events.Add(Event{Source: d.spec.Name, Action: d.spec.Action, Agent: d.spec.Agent, At: now})
	return true
}

// Detectors is the event detector network.
type Detectors struct {
	detectors []ports.Trigger
}

var _ ports.EventDetectorNetwork = (*Detectors)(nil)

func (d *Detectors) EventDetectors() []ports.Trigger { return d.detectors }

// manipulator applies the events of the current cycle to the world.
type manipulator struct {
	world  *World
	events *EventNetwork
	done   map[Event]bool
	endRun *bool
}

func (m *manipulator) Trigger(int) bool {
	for _, e := range m.events.Events() {
		if m.done[e] {
			continue
		}
		m.done[e] = true
		switch e.Action {
		case ActionRemoveAgent:
			m.world.RemoveAgent(e.Agent)
		case ActionEndRun:
			*m.endRun = true
		}
	}
	return true
}

// Manipulators is the manipulator network.
type Manipulators struct {
	manipulators []ports.Trigger
}

var _ ports.ManipulatorNetwork = (*Manipulators)(nil)

func (m *Manipulators) Manipulators() []ports.Trigger { return m.manipulators }
