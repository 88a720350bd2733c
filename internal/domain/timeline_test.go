package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeline(t *testing.T, interval int) *ScheduleTimeline {
	t.Helper()
	tl, err := NewScheduleTimeline(interval, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return tl
}

func TestScheduleTimeline_RejectsNonPositiveInterval(t *testing.T) {
	_, err := NewScheduleTimeline(0, nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidUpdateRate)
}

func TestScheduleTimeline_InstantSets(t *testing.T) {
	tests := []struct {
		name         string
		recurring    []TaskItem
		nonRecurring []TaskItem
		want         []int
	}{
		{
			name: "periodic tasks",
			recurring: []TaskItem{
				item(Trigger, 0, 0, 100, 10, ""),
				item(Trigger, 0, 10, 100, 0, ""),
				item(Trigger, 0, 0, 25, 0, ""),
			},
			want: []int{0, 10, 25, 50, 75, 100, 110, 125, 150, 175, 200},
		},
		{
			name: "cycle larger than window",
			recurring: []TaskItem{
				item(Trigger, 0, 0, 100, 10, ""),
				item(Trigger, 0, 10, 100, 0, ""),
				item(Trigger, 0, 0, 25, 0, ""),
				item(Trigger, 0, 10, 250, 0, ""),
			},
			want: []int{0, 10, 25, 50, 75, 100, 110, 125, 150, 175, 200},
		},
		{
			name: "delay beyond window",
			recurring: []TaskItem{
				item(Trigger, 0, 0, 100, 10, ""),
				item(Trigger, 0, 10, 100, 0, ""),
				item(Trigger, 0, 0, 50, 300, ""),
			},
			want: []int{0, 10, 100, 110, 200},
		},
		{
			name: "several cycles beyond window",
			recurring: []TaskItem{
				item(Trigger, 0, 0, 100, 10, ""),
				item(Trigger, 0, 10, 100, 0, ""),
				item(Trigger, 0, 0, 250, 0, ""),
				item(Trigger, 0, 10, 250, 10, ""),
				item(Trigger, 0, 10, 300, 0, ""),
				item(Trigger, 0, 10, 400, 0, ""),
			},
			want: []int{0, 10, 100, 110, 200},
		},
		{
			name: "one-shot inside window",
			recurring: []TaskItem{
				item(Trigger, 0, 0, 100, 10, ""),
				item(Trigger, 0, 0, 25, 0, ""),
			},
			nonRecurring: []TaskItem{item(Trigger, 0, 0, 0, 10, "")},
			want:         []int{0, 10, 25, 50, 75, 100, 110, 125, 150, 175, 200},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTimeline(t, 200)
			tl.ScheduleNewRecurringTasks(tt.recurring)
			tl.ScheduleNewNonRecurringTasks(tt.nonRecurring)
			if diff := cmp.Diff(tt.want, tl.Instants()); diff != "" {
				t.Errorf("instants mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScheduleTimeline_NonRecurringOrder(t *testing.T) {
	tl := newTimeline(t, 200)
	tl.ScheduleNewNonRecurringTasks([]TaskItem{
		item(Trigger, 0, 0, 0, 0, "first"),
		item(Trigger, 0, 10, 0, 0, "second"),
	})
	assert.Equal(t, 2, tl.Len(PhaseNonRecurring))
	assert.Equal(t, []string{"second", "first"}, labels(tl.TasksFor(PhaseNonRecurring, 0)))
}

func TestScheduleTimeline_DeleteAgentTasks(t *testing.T) {
	const removed, kept = 1, 0
	tl, err := NewScheduleTimeline(200, nil, []TaskItem{
		item(Manipulator, FrameworkOwner, 0, 100, 0, "manipulator"),
		item(Spawning, FrameworkOwner, 0, 100, 0, "spawn"),
	}, nil, nil, nil)
	require.NoError(t, err)

	tl.ScheduleNewRecurringTasks([]TaskItem{
		item(Trigger, removed, 10, 100, 0, ""),
		item(Trigger, removed, 0, 50, 0, ""),
		item(Update, kept, 0, 100, 0, ""),
		item(Update, kept, 0, 100, 10, ""),
	})
	tl.ScheduleNewNonRecurringTasks([]TaskItem{
		item(Update, kept, 0, 0, 0, ""),
		item(Trigger, removed, 10, 0, 0, ""),
	})

	tl.DeleteAgentTasks(removed)

	for _, phase := range []Phase{PhaseRecurring, PhaseNonRecurring, PhaseSpawning} {
		for _, it := range tl.phases[phase].Items() {
			assert.NotEqual(t, removed, it.Owner, "phase %s", phase)
		}
	}
	assert.Equal(t, 2, tl.Len(PhaseRecurring))
	assert.Equal(t, 1, tl.Len(PhaseNonRecurring))
	assert.Equal(t, 2, tl.Len(PhaseSpawning))
}

func TestScheduleTimeline_DeleteAgentTasksDropsSoleInstants(t *testing.T) {
	tl := newTimeline(t, 200)
	tl.ScheduleNewRecurringTasks([]TaskItem{
		item(Update, 0, 0, 100, 0, ""),
		item(Trigger, 1, 10, 25, 0, ""),
		item(Update, 0, 0, 100, 0, ""),
		item(Trigger, 1, 10, 100, 10, ""),
		item(Update, 0, 0, 50, 0, ""),
		item(Trigger, 1, 10, 10, 0, ""),
	})

	tl.DeleteAgentTasks(1)

	if diff := cmp.Diff([]int{0, 50, 100, 150, 200}, tl.Instants()); diff != "" {
		t.Errorf("instants mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduleTimeline_NextTimestampExpandsWindow(t *testing.T) {
	tl := newTimeline(t, 200)
	tl.ScheduleNewRecurringTasks([]TaskItem{
		item(Update, 0, 0, 50, 0, ""),
		item(Trigger, 0, 10, 100, 0, ""),
		item(Trigger, 0, 0, 100, 10, ""),
		item(Trigger, 0, 10, 50, 0, ""),
	})
	require.Equal(t, []int{0, 10, 50, 100, 110, 150, 200}, tl.Instants())

	steps := []struct{ from, want int }{
		{200, 210}, {210, 250}, {250, 300}, {300, 310}, {350, 400}, {410, 450},
	}
	for _, s := range steps {
		got, err := tl.NextTimestamp(s.from)
		require.NoError(t, err)
		assert.Equal(t, s.want, got, "next after %d", s.from)
	}
}

func TestScheduleTimeline_NextTimestampFromUnscheduledInstant(t *testing.T) {
	tl := newTimeline(t, 200)
	tl.ScheduleNewRecurringTasks([]TaskItem{
		item(Update, 0, 0, 50, 0, ""),
		item(Trigger, 0, 10, 100, 0, ""),
		item(Trigger, 0, 0, 100, 10, ""),
		item(Trigger, 0, 10, 50, 0, ""),
	})

	for _, s := range []struct{ from, want int }{{5, 10}, {60, 100}, {120, 150}, {90, 100}} {
		got, err := tl.NextTimestamp(s.from)
		require.NoError(t, err)
		assert.Equal(t, s.want, got, "next after %d", s.from)
	}
}

func TestScheduleTimeline_NextTimestampStrictlyIncreasing(t *testing.T) {
	tl := newTimeline(t, 100)
	tl.ScheduleNewRecurringTasks([]TaskItem{
		item(Trigger, 0, 0, 30, 5, ""),
		item(Update, 0, 0, 70, 0, ""),
	})

	var seen []int
	now := 0
	for now < 1000 {
		next, err := tl.NextTimestamp(now)
		require.NoError(t, err)
		require.Greater(t, next, now)
		seen = append(seen, next)
		now = next
	}

	// A second timeline walked with bigger jumps resolves the same instants.
	again := newTimeline(t, 100)
	again.ScheduleNewRecurringTasks([]TaskItem{
		item(Trigger, 0, 0, 30, 5, ""),
		item(Update, 0, 0, 70, 0, ""),
	})
	for i := 1; i < len(seen); i++ {
		got, err := again.NextTimestamp(seen[i-1])
		require.NoError(t, err)
		assert.Equal(t, seen[i], got)
	}
}

func TestScheduleTimeline_NextTimestampExhausted(t *testing.T) {
	tl := newTimeline(t, 100)
	tl.instants = nil
	tl.lower, tl.upper = 0, 100

	_, err := tl.NextTimestamp(50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHorizonExhausted))
}

func TestScheduleTimeline_TasksAt(t *testing.T) {
	setup := func(t *testing.T) *ScheduleTimeline {
		tl := newTimeline(t, 200)
		tl.ScheduleNewRecurringTasks([]TaskItem{
			item(Trigger, 0, 10, 100, 0, "c100d0"),
			item(Trigger, 0, 0, 25, 0, "c25d0"),
			item(Update, 0, 0, 100, 20, "c100d20"),
			item(Update, 0, 0, 100, 10, "c100d10"),
		})
		tl.ScheduleNewNonRecurringTasks([]TaskItem{
			item(Update, 0, 0, 0, 0, "init-update"),
			item(Trigger, 0, 10, 0, 0, "init-trigger"),
		})
		return tl
	}

	t.Run("first instant", func(t *testing.T) {
		tl := setup(t)
		got := tl.TasksAt(0)
		assert.ElementsMatch(t, []string{"init-update", "init-trigger", "c100d0", "c25d0"}, labels(got))
		for _, it := range got {
			assert.Zero(t, it.Delay)
		}
	})

	t.Run("unscheduled instant", func(t *testing.T) {
		tl := setup(t)
		assert.Empty(t, tl.TasksAt(1))
	})

	t.Run("second instant", func(t *testing.T) {
		tl := setup(t)
		tl.TasksAt(0)
		assert.Equal(t, []string{"c100d10"}, labels(tl.TasksAt(10)))
	})

	t.Run("upper bound", func(t *testing.T) {
		tl := setup(t)
		tl.TasksAt(0)
		assert.ElementsMatch(t, []string{"c100d0", "c25d0"}, labels(tl.TasksAt(200)))
	})

	t.Run("beyond upper bound", func(t *testing.T) {
		tl := setup(t)
		tl.TasksAt(0)
		assert.ElementsMatch(t, []string{"c100d0", "c25d0"}, labels(tl.TasksAt(300)))
	})
}

func TestScheduleTimeline_NonRecurringPulledOnce(t *testing.T) {
	tl := newTimeline(t, 100)
	tl.ScheduleNewNonRecurringTasks([]TaskItem{item(Trigger, 3, 0, 0, 40, "init")})

	assert.Equal(t, []string{"init"}, labels(tl.TasksFor(PhaseNonRecurring, 0)))
	assert.Empty(t, tl.TasksFor(PhaseNonRecurring, 0))
	assert.Empty(t, tl.TasksFor(PhaseNonRecurring, 40))
}

func TestScheduleTimeline_FixedPhasesNotConsumed(t *testing.T) {
	tl, err := NewScheduleTimeline(100,
		[]TaskItem{item(Bootstrap, FrameworkOwner, 0, 0, 0, "bootstrap")},
		[]TaskItem{item(Spawning, FrameworkOwner, 0, 100, 0, "spawn")},
		nil, nil,
		[]TaskItem{item(Finalize, FrameworkOwner, 0, 0, 0, "finalize")},
	)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.Len(t, tl.TasksFor(PhaseBootstrap, 0), 1)
		assert.Len(t, tl.TasksFor(PhaseFinalize, 500), 1)
	}
	assert.Len(t, tl.TasksFor(PhaseSpawning, 300), 1)
	assert.Empty(t, tl.TasksFor(PhaseSpawning, 350))
	assert.Nil(t, tl.TasksFor(Phase(99), 0))
}

func TestScheduleTimeline_NonRecurringPullIgnoresCycle(t *testing.T) {
	tl := newTimeline(t, 100)
	tl.ScheduleNewNonRecurringTasks([]TaskItem{
		item(Trigger, 3, 0, 100, 40, "init-trigger"),
		item(Update, 3, 0, 100, 60, "init-update"),
	})

	got := tl.TasksFor(PhaseNonRecurring, 0)
	assert.Equal(t, []string{"init-trigger", "init-update"}, labels(got))
	for _, it := range got {
		assert.Equal(t, 100, it.CycleTime)
	}
	assert.Zero(t, tl.Len(PhaseNonRecurring))
}

func TestScheduleTimeline_Window(t *testing.T) {
	tl := newTimeline(t, 100)
	lower, upper := tl.Window()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 100, upper)

	_, err := tl.NextTimestamp(250)
	require.NoError(t, err)
	lower, upper = tl.Window()
	assert.Equal(t, 200, lower)
	assert.Equal(t, 300, upper)
}
