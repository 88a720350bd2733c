package scheduler

import (
	"fmt"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// AgentParser derives the tasks of one agent's component graph.
// Delays are relative to the instant the agent is parsed at.
type AgentParser struct {
	clock domain.Clock
}

// NewAgentParser creates a parser reading the spawn instant from clock.
func NewAgentParser(clock domain.Clock) *AgentParser {
	return &AgentParser{clock: clock}
}

// Parse returns the recurring and non-recurring tasks of agent.
//
// Each component yields a Trigger task followed, per output link, by an
// Update acquiring the output and one Update per link target consuming it.
// Components flagged init and components without a cycle become one-shot
// tasks; every task keeps the priority, cycle and delay of its component.
func (p *AgentParser) Parse(agent ports.Agent) (recurring, nonRecurring []domain.TaskItem) {
	now := p.clock.Now()
	owner := agent.ID()

	for _, component := range agent.Components() {
		tasks := componentTasks(owner, now, component)
		if component.Init() || component.CycleTime() == 0 {
			nonRecurring = append(nonRecurring, tasks...)
		} else {
			recurring = append(recurring, tasks...)
		}
	}
	return recurring, nonRecurring
}

func componentTasks(owner, now int, component ports.Component) []domain.TaskItem {
	priority := component.Priority()
	cycle := component.CycleTime()
	triggerDelay := now + component.OffsetTime()
	updateDelay := triggerDelay + component.ResponseTime()
	name := component.Name()

	tasks := []domain.TaskItem{
		domain.NewTaskItem(domain.Trigger, owner, priority, cycle, triggerDelay,
			fmt.Sprintf("agent%d/%s/trigger", owner, name), component.TriggerCycle),
	}
	for _, link := range component.OutputLinks() {
		tasks = append(tasks, domain.NewTaskItem(domain.Update, owner, priority, cycle, updateDelay,
			fmt.Sprintf("agent%d/%s/output%d", owner, name, link.ID), acquireOutput(component, link.ID)))

		for _, target := range link.Targets {
			tasks = append(tasks, domain.NewTaskItem(domain.Update, owner, priority, cycle, updateDelay,
				fmt.Sprintf("agent%d/%s/input%d", owner, target.Component.Name(), target.LinkID),
				updateInput(target.Component, target.LinkID)))
		}
	}
	return tasks
}

func acquireOutput(c ports.Component, linkID int) domain.TaskFunc {
	return func(now int) bool { return c.AcquireOutputData(linkID, now) }
}

func updateInput(c ports.Component, linkID int) domain.TaskFunc {
	return func(now int) bool { return c.UpdateInputData(linkID, now) }
}
