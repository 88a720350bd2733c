// Package memworld is an in-memory simulation world described by a YAML
// traffic file. It implements every collaborator the scheduler drives.
package memworld

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Traffic describes the agents and framework modules of a scenario.
type Traffic struct {
	// EndAt makes the observation network set the end condition at this instant.
	EndAt *int `yaml:"endAt,omitempty"`
	// SpawnJitter delays each runtime spawn by a seeded random amount in [0, SpawnJitter].
	SpawnJitter int            `yaml:"spawnJitter,omitempty"`
	Agents      []AgentSpec    `yaml:"agents"`
	Detectors   []DetectorSpec `yaml:"detectors,omitempty"`
}

// AgentSpec describes one agent.
type AgentSpec struct {
	ID         int             `yaml:"id"`
	PreRun     bool            `yaml:"preRun,omitempty"` // Spawned by the pre-run spawn zones
	SpawnAt    int             `yaml:"spawnAt,omitempty"`
	RemoveAt   *int            `yaml:"removeAt,omitempty"`
	Components []ComponentSpec `yaml:"components"`
}

// ComponentSpec describes one component of an agent.
type ComponentSpec struct {
	Name     string     `yaml:"name"`
	Priority int        `yaml:"priority,omitempty"`
	Cycle    int        `yaml:"cycle"`
	Offset   int        `yaml:"offset,omitempty"`
	Response int        `yaml:"response,omitempty"`
	Init     bool       `yaml:"init,omitempty"`
	FailAt   *int       `yaml:"failAt,omitempty"` // TriggerCycle fails from this instant on
	Outputs  []LinkSpec `yaml:"outputs,omitempty"`
}

// LinkSpec is an output link of a component.
type LinkSpec struct {
	ID      int          `yaml:"id"`
	Targets []TargetSpec `yaml:"targets"`
}

// TargetSpec names the component of the same agent consuming a link.
type TargetSpec struct {
	Component string `yaml:"component"`
	Link      int    `yaml:"link"`
}

// Detector actions.
const (
	ActionRemoveAgent = "remove_agent"
	ActionEndRun      = "end_run"
)

// DetectorSpec raises one event once its instant is reached.
type DetectorSpec struct {
	Name   string `yaml:"name"`
	At     int    `yaml:"at"`
	Action string `yaml:"action"`
	Agent  int    `yaml:"agent,omitempty"`
}

// LoadTraffic reads and validates a traffic file.
func LoadTraffic(path string) (*Traffic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read traffic file: %w", err)
	}
	return ParseTraffic(data)
}

// ParseTraffic decodes and validates a traffic description.
func ParseTraffic(data []byte) (*Traffic, error) {
	var t Traffic
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse traffic: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks ids, component references and timing values.
func (t *Traffic) Validate() error {
	if t.SpawnJitter < 0 {
		return fmt.Errorf("spawnJitter cannot be negative")
	}
	ids := make(map[int]bool, len(t.Agents))
	for _, a := range t.Agents {
		if a.ID < 0 {
			return fmt.Errorf("agent %d: id cannot be negative", a.ID)
		}
		if ids[a.ID] {
			return fmt.Errorf("agent %d: duplicate id", a.ID)
		}
		ids[a.ID] = true
		if a.SpawnAt < 0 {
			return fmt.Errorf("agent %d: spawnAt cannot be negative", a.ID)
		}

		names := make(map[string]bool, len(a.Components))
		for _, c := range a.Components {
			if c.Name == "" {
				return fmt.Errorf("agent %d: component without name", a.ID)
			}
			if names[c.Name] {
				return fmt.Errorf("agent %d: duplicate component %q", a.ID, c.Name)
			}
			names[c.Name] = true
			if c.Cycle < 0 || c.Offset < 0 || c.Response < 0 {
				return fmt.Errorf("agent %d component %q: cycle, offset and response cannot be negative", a.ID, c.Name)
			}
		}
		for _, c := range a.Components {
			for _, link := range c.Outputs {
				for _, target := range link.Targets {
					if !names[target.Component] {
						return fmt.Errorf("agent %d component %q: unknown link target %q", a.ID, c.Name, target.Component)
					}
				}
			}
		}
	}
	for _, d := range t.Detectors {
		switch d.Action {
		case ActionRemoveAgent:
			if !ids[d.Agent] {
				return fmt.Errorf("detector %q: unknown agent %d", d.Name, d.Agent)
			}
		case ActionEndRun:
		default:
			return fmt.Errorf("detector %q: unknown action %q", d.Name, d.Action)
		}
	}
	return nil
}
