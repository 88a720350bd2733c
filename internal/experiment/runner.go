// Package experiment repeats simulation runs over a range of seeds.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/drivesim/internal/domain"
	"github.com/ZanzyTHEbar/drivesim/internal/ports"
	"github.com/ZanzyTHEbar/drivesim/internal/scheduler"
)

// Invocation identifies one run of an experiment.
type Invocation struct {
	Index int
	Seed  int64
	RunID string
}

// Instance is the set of collaborators of one invocation.
type Instance struct {
	Network scheduler.Network
	Events  ports.EventNetwork
}

// Factory builds fresh collaborators for an invocation.
type Factory func(inv Invocation) (Instance, error)

// Observer is told about every finished run.
type Observer interface {
	// FinalizeRun is called after each successful run.
	FinalizeRun(inv Invocation, result *domain.RunResult) error
	// FinalizeAll is called once after the last run.
	FinalizeAll() error
}

// Config describes the runs of an experiment.
type Config struct {
	StartTime   int
	EndTime     int
	Invocations int
	RandomSeed  int64
	Parallelism int
	UpdateRate  int
}

// Record is the outcome of one invocation.
type Record struct {
	Invocation Invocation
	EndTime    int
	EndReason  string
	Stats      scheduler.Stats
	Err        error
}

// Summary is the outcome of an experiment.
type Summary struct {
	Records []Record
}

// Succeeded returns the number of runs that completed.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Records {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Runner executes the invocations of an experiment.
type Runner struct {
	cfg       Config
	factory   Factory
	observer  Observer
	publisher ports.EventPublisher
	log       zerolog.Logger

	mu sync.Mutex // serializes observer calls and records
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the observer of finished runs.
func WithObserver(o Observer) Option { return func(r *Runner) { r.observer = o } }

// WithEventPublisher forwards run lifecycle events to p.
func WithEventPublisher(p ports.EventPublisher) Option { return func(r *Runner) { r.publisher = p } }

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option { return func(r *Runner) { r.log = log } }

// NewRunner creates a runner. Invocations and Parallelism below one are treated as one.
func NewRunner(cfg Config, factory Factory, opts ...Option) *Runner {
	if cfg.Invocations < 1 {
		cfg.Invocations = 1
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if cfg.UpdateRate < 1 {
		cfg.UpdateRate = scheduler.DefaultUpdateRate
	}
	r := &Runner{cfg: cfg, factory: factory, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With().Str("component", "experiment").Logger()
	return r
}

// Run executes every invocation, stopping at the first failed run.
// Invocation i uses seed RandomSeed+i. FinalizeAll runs even after a failure.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	var runErr error
	if r.cfg.Parallelism == 1 {
		runErr = r.runSequential(ctx, &summary)
	} else {
		runErr = r.runParallel(ctx, &summary)
	}

	if r.observer != nil {
		if err := r.observer.FinalizeAll(); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("finalize experiment: %w", err))
		}
	}
	r.log.Info().
		Int("invocations", r.cfg.Invocations).
		Int("succeeded", summary.Succeeded()).
		Bool("failed", runErr != nil).
		Msg("experiment finished")
	return summary, runErr
}

func (r *Runner) runSequential(ctx context.Context, summary *Summary) error {
	for i := 0; i < r.cfg.Invocations; i++ {
		if err := r.invoke(ctx, r.invocation(i), summary); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runParallel(ctx context.Context, summary *Summary) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i := 0; i < r.cfg.Invocations; i++ {
		inv := r.invocation(i)
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return r.invoke(ctx, inv, summary)
		})
	}
	err := g.Wait()
	slices.SortFunc(summary.Records, func(a, b Record) int {
		return a.Invocation.Index - b.Invocation.Index
	})
	return err
}

func (r *Runner) invocation(i int) Invocation {
	return Invocation{Index: i, Seed: r.cfg.RandomSeed + int64(i), RunID: uuid.NewString()}
}

func (r *Runner) invoke(ctx context.Context, inv Invocation, summary *Summary) error {
	log := r.log.With().Int("invocation", inv.Index).Int64("seed", inv.Seed).Str("run_id", inv.RunID).Logger()

	instance, err := r.factory(inv)
	if err != nil {
		r.record(summary, Record{Invocation: inv, Err: err})
		return fmt.Errorf("invocation %d: build: %w", inv.Index, err)
	}

	opts := []scheduler.Option{
		scheduler.WithLogger(log),
		scheduler.WithUpdateRate(r.cfg.UpdateRate),
		scheduler.WithRunID(inv.RunID),
	}
	if r.publisher != nil {
		opts = append(opts, scheduler.WithEventPublisher(r.publisher))
	}
	s := scheduler.New(instance.Network, opts...)

	result := &domain.RunResult{}
	err = s.Run(ctx, r.cfg.StartTime, r.cfg.EndTime, result, instance.Events)
	r.record(summary, Record{
		Invocation: inv,
		EndTime:    result.EndTime(),
		EndReason:  result.EndReason(),
		Stats:      s.Stats(),
		Err:        err,
	})
	if err != nil {
		log.Error().Err(err).Msg("simulation run failed")
		return fmt.Errorf("invocation %d: %w", inv.Index, err)
	}

	if r.observer != nil {
		r.mu.Lock()
		err = r.observer.FinalizeRun(inv, result)
		r.mu.Unlock()
		if err != nil {
			return fmt.Errorf("invocation %d: finalize: %w", inv.Index, err)
		}
	}
	return nil
}

func (r *Runner) record(summary *Summary, rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary.Records = append(summary.Records, rec)
}
