package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(int) bool { return true }

func item(kind TaskKind, owner, priority, cycle, delay int, label string) TaskItem {
	return NewTaskItem(kind, owner, priority, cycle, delay, label, ok)
}

func labels(items []TaskItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestTasks_AddTaskKeepsTotalOrder(t *testing.T) {
	ts := NewTasks(
		item(Trigger, 0, 0, 50, 0, "1"),
		item(Trigger, 0, 10, 0, 0, "2"),
		item(Update, 0, 0, 100, 0, "3"),
		item(Update, 0, 0, 0, 0, "4"),
		item(Update, 0, 10, 100, 0, "5"),
		item(Update, 0, 0, 100, 10, "6"),
	)

	require.Equal(t, 6, ts.Len())
	assert.Equal(t, []string{"2", "5", "1", "3", "4", "6"}, labels(ts.Items()))
}

func TestTasks_TriggerBeforeUpdateRegardlessOfInsertion(t *testing.T) {
	ts := NewTasks(
		item(Update, 7, 3, 100, 20, "update"),
		item(Trigger, 7, 3, 100, 20, "trigger"),
	)
	assert.Equal(t, []string{"trigger", "update"}, labels(ts.Items()))
}

func TestTasks_EqualItemsKeepInsertionOrder(t *testing.T) {
	ts := NewTasks(
		item(Update, 0, 0, 0, 0, "output"),
		item(Update, 1, 0, 0, 0, "input"),
	)
	assert.Equal(t, []string{"output", "input"}, labels(ts.TasksDueAt(0)))
}

func TestTasks_RemoveTasksOf(t *testing.T) {
	ts := NewTasks(
		item(Trigger, 0, 0, 0, 0, "a"),
		item(Trigger, 1, 10, 100, 0, "b"),
		item(Trigger, 1, 0, 50, 0, "c"),
		item(Trigger, 2, 10, 0, 0, "d"),
		item(Trigger, 3, 0, 100, 0, "e"),
		item(Trigger, 2, 0, 100, 10, "f"),
	)

	require.True(t, ts.RemoveTasksOf(2))
	items := ts.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "b", items[0].Label)
	assert.ElementsMatch(t, []string{"a", "b", "c", "e"}, labels(items))

	assert.False(t, ts.RemoveTasksOf(42), "removing an unknown owner is a no-op")
	assert.Equal(t, 4, ts.Len())
}

func TestTasks_RemoveLastTasks(t *testing.T) {
	ts := NewTasks(item(Trigger, 0, 0, 0, 0, "a"), item(Trigger, 0, 10, 100, 0, "b"))
	require.True(t, ts.RemoveTasksOf(0))
	assert.Zero(t, ts.Len())
}

func TestTasks_TasksDueAt(t *testing.T) {
	ts := NewTasks(
		item(Trigger, 0, 0, 100, 10, "c100d10"),
		item(Trigger, 0, 0, 25, 0, "c25d0"),
		item(Trigger, 0, 0, 0, 40, "oneshot"),
	)

	tests := []struct {
		now  int
		want []string
	}{
		{0, []string{"c25d0", "oneshot"}},
		{10, []string{"c100d10", "oneshot"}},
		{25, []string{"c25d0", "oneshot"}},
		{110, []string{"c100d10", "oneshot"}},
		{111, []string{"oneshot"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labels(ts.TasksDueAt(tt.now)), "t=%d", tt.now)
	}
}

func TestTaskItem_DueAtRequiresDelayReached(t *testing.T) {
	it := item(Update, 0, 0, 100, 150, "late")
	assert.False(t, it.DueAt(50), "negative offset must not be due")
	assert.True(t, it.DueAt(150))
	assert.True(t, it.DueAt(250))
	assert.False(t, it.DueAt(200))
}

func TestTaskItem_ExecutePassesInstant(t *testing.T) {
	var seen int
	it := NewTaskItem(Trigger, 1, 0, 100, 0, "clock", func(now int) bool {
		seen = now
		return true
	})
	require.True(t, it.Execute(300))
	assert.Equal(t, 300, seen)

	assert.False(t, TaskItem{}.Execute(0), "a task without work fails")
}

func TestTasks_ClearReleasesItems(t *testing.T) {
	ts := NewTasks(item(Trigger, 1, 0, 0, 0, "a"), item(Update, 1, 0, 0, 0, "b"))
	backing := ts.items[:cap(ts.items)]

	ts.Clear()

	assert.Zero(t, ts.Len())
	for _, it := range backing {
		assert.Nil(t, it.Run)
	}
	ts.AddTask(item(Trigger, 2, 0, 0, 0, "c"))
	assert.Equal(t, []string{"c"}, labels(ts.Items()))
}
