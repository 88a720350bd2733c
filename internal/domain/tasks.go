package domain

import (
	"slices"
	"sort"
)

// Tasks is an ordered multiset of task items of one scheduling category.
// Items that compare equal keep their insertion order.
type Tasks struct {
	items []TaskItem
}

// NewTasks creates a container holding items.
func NewTasks(items ...TaskItem) *Tasks {
	ts := &Tasks{}
	for _, item := range items {
		ts.AddTask(item)
	}
	return ts
}

// AddTask inserts item after every item that does not sort after it.
func (ts *Tasks) AddTask(item TaskItem) {
	i := sort.Search(len(ts.items), func(i int) bool {
		return item.Less(ts.items[i])
	})
	ts.items = slices.Insert(ts.items, i, item)
}

// TasksDueAt returns the items due at now, in execution order.
func (ts *Tasks) TasksDueAt(now int) []TaskItem {
	due := make([]TaskItem, 0, len(ts.items))
	for _, item := range ts.items {
		if item.DueAt(now) {
			due = append(due, item)
		}
	}
	return due
}

// RemoveTasksOf deletes every item owned by owner and reports whether any was removed.
func (ts *Tasks) RemoveTasksOf(owner int) bool {
	before := len(ts.items)
	ts.items = slices.DeleteFunc(ts.items, func(item TaskItem) bool {
		return item.Owner == owner
	})
	return len(ts.items) != before
}

// Clear removes every item and drops the references to their work.
func (ts *Tasks) Clear() {
	clear(ts.items)
	ts.items = ts.items[:0]
}

// Len returns the number of items.
func (ts *Tasks) Len() int { return len(ts.items) }

// Items returns a copy of the items in execution order.
func (ts *Tasks) Items() []TaskItem { return slices.Clone(ts.items) }
