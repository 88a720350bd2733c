// Package scheduler drives a simulation run: it derives tasks from the
// framework network and spawned agents and executes them instant by instant.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
)

// DefaultUpdateRate is the framework tick in milliseconds.
const DefaultUpdateRate = 100

// Scheduler runs the task loop of one simulation run. It is single-threaded;
// a Scheduler must not run twice concurrently.
type Scheduler struct {
	net        Network
	updateRate int
	log        zerolog.Logger
	publisher  ports.EventPublisher
	runID      string
	trace      func(TracePoint)

	state State
	stats Stats
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithUpdateRate sets the framework tick, which is also the horizon window size.
func WithUpdateRate(rate int) Option {
	return func(s *Scheduler) { s.updateRate = rate }
}

// WithEventPublisher publishes run lifecycle events to p.
func WithEventPublisher(p ports.EventPublisher) Option {
	return func(s *Scheduler) { s.publisher = p }
}

// WithRunID tags logs and events with id.
func WithRunID(id string) Option {
	return func(s *Scheduler) { s.runID = id }
}

// WithTrace calls fn after every executed instant.
func WithTrace(fn func(TracePoint)) Option {
	return func(s *Scheduler) { s.trace = fn }
}

// New creates a Scheduler for the given framework network.
func New(net Network, opts ...Option) *Scheduler {
	s := &Scheduler{
		net:        net,
		updateRate: DefaultUpdateRate,
		log:        zerolog.Nop(),
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "scheduler").Logger()
	if s.runID != "" {
		s.log = s.log.With().Str("run_id", s.runID).Logger()
	}
	return s
}

// State returns the phase being executed, or the final state after Run returned.
func (s *Scheduler) State() State { return s.state }

// Stats returns counters of the last run.
func (s *Scheduler) Stats() Stats { return s.stats }

// run holds the per-run collaborators of the loop.
type run struct {
	clock    *domain.SimClock
	timeline *domain.ScheduleTimeline
	parser   *AgentParser
}

// Run executes the simulation from start until end or until result reports an
// end condition. It returns nil on success. The first failing task aborts the
// run with an error wrapping domain.ErrTaskFailed; Finalize only runs after a
// successful loop.
func (s *Scheduler) Run(ctx context.Context, start, end int, result *domain.RunResult, events ports.EventNetwork) error {
	s.stats = Stats{}
	if start > end {
		s.state = StateTerminated
		err := &domain.RunError{Kind: domain.ErrInvalidTimeBounds, Instant: start,
			Cause: fmt.Errorf("start %d after end %d", start, end)}
		s.log.Error().Err(err).Msg("invalid run configuration")
		return err
	}
	if err := s.net.validate(); err != nil {
		s.state = StateTerminated
		return fmt.Errorf("scheduler network: %w", err)
	}
	if result == nil {
		result = &domain.RunResult{}
	}

	r, err := s.prepare(start, result)
	if err != nil {
		s.state = StateTerminated
		return err
	}

	s.log.Info().Int("start", start).Int("end", end).Int("update_rate", s.updateRate).Msg("run started")
	s.publish(domain.TopicRunStarted, start, nil)

	last, err := s.loop(ctx, r, start, end, result, events)
	if err != nil {
		return s.fail(last, err)
	}

	s.state = StateFinalize
	if err := s.execute(domain.PhaseFinalize, r.timeline.TasksFor(domain.PhaseFinalize, last), last); err != nil {
		return s.fail(last, err)
	}

	s.state = StateTerminated
	result.Complete(last)
	s.log.Info().
		Int("end_time", last).
		Int("instants", s.stats.Instants).
		Int("tasks", s.stats.TasksExecuted).
		Bool("end_condition", result.IsEndCondition()).
		Msg("run completed")
	s.publish(domain.TopicRunCompleted, last, s.summary(last, nil))
	return nil
}

func (s *Scheduler) prepare(start int, result *domain.RunResult) (*run, error) {
	builder := NewTaskBuilder(s.updateRate, s.net, result)
	timeline, err := domain.NewScheduleTimeline(s.updateRate,
		builder.BootstrapTasks(),
		builder.SpawningTasks(),
		builder.PreAgentTasks(),
		builder.SynchronizeTasks(),
		builder.FinalizeTasks(),
	)
	if err != nil {
		return nil, &domain.RunError{Kind: domain.ErrInvalidUpdateRate, Instant: start, Cause: err}
	}
	clock := domain.NewSimClock(start)
	return &run{clock: clock, timeline: timeline, parser: NewAgentParser(clock)}, nil
}

// loop runs bootstrap and every cycle. It returns the last executed instant.
func (s *Scheduler) loop(ctx context.Context, r *run, start, end int, result *domain.RunResult, events ports.EventNetwork) (int, error) {
	s.state = StateBootstrap
	if err := s.execute(domain.PhaseBootstrap, r.timeline.TasksFor(domain.PhaseBootstrap, start), start); err != nil {
		return start, err
	}

	now, last := start, start
	for now <= end {
		if err := ctx.Err(); err != nil {
			return last, &domain.RunError{Kind: domain.ErrRunCancelled, Instant: now, Cause: err}
		}
		r.clock.Set(now)
		last = now
		executedBefore := s.stats.TasksExecuted

		if err := s.cycle(r, now); err != nil {
			return last, err
		}
		s.stats.Instants++
		if s.trace != nil {
			lower, upper := r.timeline.Window()
			s.trace(TracePoint{
				Instant: now,
				Tasks:   s.stats.TasksExecuted - executedBefore,
				Lower:   lower,
				Upper:   upper,
			})
		}

		if result.IsEndCondition() {
			s.log.Info().Int("t", now).Str("reason", result.EndReason()).Msg("end condition reached")
			break
		}
		if events != nil {
			events.Clear()
		}

		next, err := r.timeline.NextTimestamp(now)
		if err != nil {
			return last, &domain.RunError{Kind: domain.ErrHorizonExhausted, Instant: now, Cause: err}
		}
		now = next
	}
	return last, nil
}

func (s *Scheduler) cycle(r *run, now int) error {
	tl := r.timeline

	s.state = StateSpawning
	if err := s.execute(domain.PhaseSpawning, tl.TasksFor(domain.PhaseSpawning, now), now); err != nil {
		return err
	}
	s.updateAgents(r, now)

	s.state = StatePreAgent
	if err := s.execute(domain.PhasePreAgent, tl.TasksFor(domain.PhasePreAgent, now), now); err != nil {
		return err
	}

	s.state = StateAgentExecution
	if err := s.execute(domain.PhaseNonRecurring, tl.TasksFor(domain.PhaseNonRecurring, now), now); err != nil {
		return err
	}
	if err := s.execute(domain.PhaseRecurring, tl.TasksFor(domain.PhaseRecurring, now), now); err != nil {
		return err
	}

	s.state = StateSynchronize
	return s.execute(domain.PhaseSynchronize, tl.TasksFor(domain.PhaseSynchronize, now), now)
}

// updateAgents registers tasks of spawned agents and drops tasks of removed ones.
func (s *Scheduler) updateAgents(r *run, now int) {
	for _, agent := range s.net.SpawnPoints.ConsumeNewAgents() {
		recurring, nonRecurring := r.parser.Parse(agent)
		r.timeline.ScheduleNewRecurringTasks(recurring)
		r.timeline.ScheduleNewNonRecurringTasks(nonRecurring)
		agent.BindClock(r.clock)

		s.stats.AgentsSpawned++
		s.log.Debug().Int("t", now).Int("agent", agent.ID()).
			Int("recurring", len(recurring)).Int("non_recurring", len(nonRecurring)).
			Msg("agent spawned")
		s.publish(domain.TopicAgentSpawned, now, domain.AgentEvent{AgentID: agent.ID()})
	}

	removed := s.net.World.RemovedAgentsInPreviousTimestep()
	if len(removed) == 0 {
		return
	}
	r.timeline.DeleteAgentTasks(removed...)
	for _, id := range removed {
		s.stats.AgentsRemoved++
		s.log.Debug().Int("t", now).Int("agent", id).Msg("agent removed")
		s.publish(domain.TopicAgentRemoved, now, domain.AgentEvent{AgentID: id})
	}
}

func (s *Scheduler) execute(phase domain.Phase, tasks []domain.TaskItem, now int) error {
	for _, task := range tasks {
		s.stats.TasksExecuted++
		if !task.Execute(now) {
			return domain.TaskFailure(phase, now, task)
		}
		s.log.Trace().Int("t", now).Stringer("task", task).Msg("task executed")
	}
	return nil
}

func (s *Scheduler) fail(last int, err error) error {
	s.state = StateTerminated
	ev := s.log.Error().Err(err).Int("t", last)
	var runErr *domain.RunError
	if errors.As(err, &runErr) && runErr.Task != nil {
		ev = ev.Stringer("kind", runErr.Task.Kind).Int("owner", runErr.Task.Owner).Str("task", runErr.Task.Label)
	}
	ev.Msg("run failed")
	s.publish(domain.TopicRunFailed, last, s.summary(last, err))
	return err
}

func (s *Scheduler) summary(last int, err error) domain.RunSummary {
	return domain.RunSummary{
		EndTime:       last,
		Instants:      s.stats.Instants,
		TasksExecuted: s.stats.TasksExecuted,
		Err:           err,
	}
}

func (s *Scheduler) publish(topic string, instant int, data any) {
	if s.publisher == nil {
		return
	}
	ev := domain.NewEvent(topic, instant, data)
	ev.RunID = s.runID
	s.publisher.Publish(ev)
}
