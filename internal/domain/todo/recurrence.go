package todo

import (
	"fmt"
	"time"
)

// Recurrence is the interval at which a recurring todo repeats.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// IsValid returns true if the pattern is one of the defined constants.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Recurrence) String() string {
	return string(r)
}

// NextOccurrence returns the due date of the occurrence following due.
//
// Daily and weekly patterns add calendar days. Monthly and yearly patterns keep
// the day of month, clamped to the last day of the target month, so Jan 31
// becomes Feb 28 (or 29) and Feb 29 becomes Feb 28 in a common year. The
// wall-clock time and location of due are preserved.
//
// The pattern must already be validated; an unknown pattern panics.
func NextOccurrence(due time.Time, pattern Recurrence) time.Time {
	switch pattern {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return addMonthsClamped(due, 1)
	case RecurrenceYearly:
		return addMonthsClamped(due, 12)
	default:
		panic(fmt.Sprintf("todo: unknown recurrence pattern %q", string(pattern)))
	}
}

// addMonthsClamped moves t forward by months without overflowing into the
// following month, unlike time.AddDate which normalizes Jan 31 + 1 month to
// Mar 2 or 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	loc := t.Location()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, loc)
	if last := daysIn(target.Year(), target.Month(), loc); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), loc)
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// TriggersRecurrence reports whether moving from before to after completes a
// recurring todo and therefore spawns its next occurrence. Re-completing an
// already completed todo never triggers.
func TriggersRecurrence(before, after *Todo) bool {
	return !before.Completed &&
		after.Completed &&
		after.IsRecurring &&
		after.DueDate != nil &&
		after.RecurrencePattern != nil
}

// Successor builds the next occurrence of parent. It copies the parent's
// current title, priority, reminder and recurrence settings, advances the due
// date by the pattern and stamps both timestamps with now. The returned todo
// has no ID until it is stored.
func Successor(parent *Todo, now time.Time) Todo {
	next := parent.Clone()
	next.ID = 0
	next.Completed = false

	due := NextOccurrence(*parent.DueDate, *parent.RecurrencePattern)
	next.DueDate = &due
	next.CreatedAt = now
	next.UpdatedAt = now
	return next
}
