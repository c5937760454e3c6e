package todo

import (
	"cmp"
	"slices"
	"time"
)

// Groups is the sorted list of todos and its partition for display. Every todo
// in All appears in exactly one of Overdue, Pending or Completed, in the same
// relative order.
type Groups struct {
	All       []Todo
	Overdue   []Todo
	Pending   []Todo
	Completed []Todo
}

// Compare orders todos by priority rank, then due date ascending with
// undated todos last, then newest first.
func Compare(a, b *Todo) int {
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}

	switch {
	case a.DueDate == nil && b.DueDate != nil:
		return 1
	case a.DueDate != nil && b.DueDate == nil:
		return -1
	case a.DueDate != nil && b.DueDate != nil:
		if c := a.DueDate.Compare(*b.DueDate); c != 0 {
			return c
		}
	}

	return b.CreatedAt.Compare(a.CreatedAt)
}

// Sort orders todos in place using Compare. Ties keep their input order.
func Sort(todos []Todo) {
	slices.SortStableFunc(todos, func(a, b Todo) int {
		return Compare(&a, &b)
	})
}

// Group sorts a copy of todos and partitions it relative to now.
func Group(todos []Todo, now time.Time) Groups {
	all := slices.Clone(todos)
	Sort(all)

	g := Groups{
		All:       all,
		Overdue:   []Todo{},
		Pending:   []Todo{},
		Completed: []Todo{},
	}
	if g.All == nil {
		g.All = []Todo{}
	}

	for i := range all {
		t := &all[i]
		switch {
		case t.Completed:
			g.Completed = append(g.Completed, *t)
		case t.IsOverdue(now):
			g.Overdue = append(g.Overdue, *t)
		default:
			g.Pending = append(g.Pending, *t)
		}
	}

	return g
}
