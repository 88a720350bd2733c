package domain

import (
	"fmt"
	"slices"
)

// Phase selects one of the task categories kept by a ScheduleTimeline.
type Phase int

const (
	PhaseBootstrap Phase = iota
	PhaseSpawning
	PhasePreAgent
	PhaseNonRecurring
	PhaseRecurring
	PhaseSynchronize
	PhaseFinalize

	phaseCount
)

var phaseNames = [...]string{
	PhaseBootstrap:    "bootstrap",
	PhaseSpawning:     "spawning",
	PhasePreAgent:     "pre_agent",
	PhaseNonRecurring: "non_recurring",
	PhaseRecurring:    "recurring",
	PhaseSynchronize:  "synchronize",
	PhaseFinalize:     "finalize",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ScheduleTimeline owns the task categories of a run and the sparse set of
// instants inside the current window [lower, upper] at which a task is due.
// The window advances by interval whenever a requested instant reaches upper.
//
// Not safe for concurrent use.
type ScheduleTimeline struct {
	phases   [phaseCount]Tasks
	interval int
	lower    int
	upper    int
	instants []int // sorted, distinct
}

// NewScheduleTimeline builds a timeline from the fixed framework task sets.
// interval is both the window size and the step the window advances by.
func NewScheduleTimeline(interval int, bootstrap, spawning, preAgent, synchronize, finalize []TaskItem) (*ScheduleTimeline, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUpdateRate, interval)
	}
	tl := &ScheduleTimeline{interval: interval, upper: interval}
	fixed := map[Phase][]TaskItem{
		PhaseBootstrap:   bootstrap,
		PhaseSpawning:    spawning,
		PhasePreAgent:    preAgent,
		PhaseSynchronize: synchronize,
		PhaseFinalize:    finalize,
	}
	for phase, items := range fixed {
		for _, item := range items {
			tl.phases[phase].AddTask(item)
		}
	}
	tl.recompute()
	return tl, nil
}

// ScheduleNewRecurringTasks registers periodic agent tasks and adds their
// instants inside the current window.
func (tl *ScheduleTimeline) ScheduleNewRecurringTasks(items []TaskItem) {
	tl.schedule(PhaseRecurring, items)
}

// ScheduleNewNonRecurringTasks registers one-shot agent tasks.
func (tl *ScheduleTimeline) ScheduleNewNonRecurringTasks(items []TaskItem) {
	tl.schedule(PhaseNonRecurring, items)
}

func (tl *ScheduleTimeline) schedule(phase Phase, items []TaskItem) {
	for _, item := range items {
		tl.phases[phase].AddTask(item)
		tl.addInstantsOf(item)
	}
}

// DeleteAgentTasks removes every agent task of the given owners. The instant
// set is rebuilt when anything was removed.
func (tl *ScheduleTimeline) DeleteAgentTasks(owners ...int) {
	removed := false
	for _, owner := range owners {
		if tl.phases[PhaseRecurring].RemoveTasksOf(owner) {
			removed = true
		}
		if tl.phases[PhaseNonRecurring].RemoveTasksOf(owner) {
			removed = true
		}
	}
	if removed {
		tl.recompute()
	}
}

// NextTimestamp returns the smallest scheduled instant strictly greater than t,
// advancing the window first if t has reached its upper bound.
func (tl *ScheduleTimeline) NextTimestamp(t int) (int, error) {
	tl.expand(t)
	i, found := slices.BinarySearch(tl.instants, t)
	if found {
		i++
	}
	if i >= len(tl.instants) {
		return 0, fmt.Errorf("%w: t=%d window=[%d,%d]", ErrHorizonExhausted, t, tl.lower, tl.upper)
	}
	return tl.instants[i], nil
}

// TasksFor returns the tasks of phase due at t. Pulling PhaseNonRecurring
// returns and consumes every registered one-shot task, whatever its cycle.
func (tl *ScheduleTimeline) TasksFor(phase Phase, t int) []TaskItem {
	if phase < 0 || phase >= phaseCount {
		return nil
	}
	if phase == PhaseNonRecurring {
		pulled := tl.phases[phase].Items()
		tl.phases[phase].Clear()
		return pulled
	}
	return tl.phases[phase].TasksDueAt(t)
}

// TasksAt returns every per-instant task due at t in execution order:
// spawning, non-recurring, recurring, then synchronize tasks. It returns
// nothing when t is not a scheduled instant.
func (tl *ScheduleTimeline) TasksAt(t int) []TaskItem {
	tl.expand(t)
	if _, found := slices.BinarySearch(tl.instants, t); !found {
		return nil
	}
	var all []TaskItem
	for _, phase := range []Phase{PhaseSpawning, PhaseNonRecurring, PhaseRecurring, PhaseSynchronize} {
		all = append(all, tl.TasksFor(phase, t)...)
	}
	return all
}

// Instants returns a copy of the scheduled instants in the current window.
func (tl *ScheduleTimeline) Instants() []int { return slices.Clone(tl.instants) }

// Window returns the current window bounds.
func (tl *ScheduleTimeline) Window() (lower, upper int) { return tl.lower, tl.upper }

// Len returns the number of tasks registered for phase.
func (tl *ScheduleTimeline) Len(phase Phase) int {
	if phase < 0 || phase >= phaseCount {
		return 0
	}
	return tl.phases[phase].Len()
}

func (tl *ScheduleTimeline) expand(t int) {
	if t < tl.upper {
		return
	}
	for t >= tl.upper {
		tl.lower += tl.interval
		tl.upper += tl.interval
	}
	tl.recompute()
}

// recompute rebuilds the instant set from the window bounds and the
// spawning and recurring tasks. Non-recurring tasks are pulled at the first
// executed instant and never contribute.
func (tl *ScheduleTimeline) recompute() {
	tl.instants = tl.instants[:0]
	tl.insert(tl.lower)
	tl.insert(tl.upper)
	for _, phase := range []Phase{PhaseSpawning, PhaseRecurring} {
		for _, item := range tl.phases[phase].items {
			tl.addInstantsOf(item)
		}
	}
}

func (tl *ScheduleTimeline) addInstantsOf(item TaskItem) {
	c, d := item.CycleTime, item.Delay
	if tl.lower < d && d < tl.upper {
		tl.insert(d)
	}
	if c <= 0 {
		return
	}
	cur := d + c
	if cur < tl.lower {
		cur += c * ((tl.lower - cur + c - 1) / c)
	}
	for ; cur <= tl.upper; cur += c {
		tl.insert(cur)
	}
}

func (tl *ScheduleTimeline) insert(instant int) {
	i, found := slices.BinarySearch(tl.instants, instant)
	if !found {
		tl.instants = slices.Insert(tl.instants, i, instant)
	}
}
