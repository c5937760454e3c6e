package todo

import "time"

// Nullable is a patch field for an optional attribute. Set distinguishes an
// omitted field from one explicitly cleared with null (Set with a nil Value).
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a Nullable that replaces the attribute with v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a Nullable that clears the attribute.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Patch is a partial update. Nil pointers and unset Nullables leave the
// existing value in place.
type Patch struct {
	Title             *string
	Completed         *bool
	Priority          *Priority
	IsRecurring       *bool
	DueDate           Nullable[time.Time]
	RecurrencePattern Nullable[Recurrence]
	ReminderMinutes   Nullable[int]
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Completed == nil &&
		p.Priority == nil &&
		p.IsRecurring == nil &&
		!p.DueDate.Set &&
		!p.RecurrencePattern.Set &&
		!p.ReminderMinutes.Set
}

// Apply merges the patch onto existing and returns the effective candidate.
// The candidate is not normalized so that validation still sees every value
// the request supplied; existing is left untouched.
func (p *Patch) Apply(existing *Todo) Todo {
	c := existing.Clone()

	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Completed != nil {
		c.Completed = *p.Completed
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.IsRecurring != nil {
		c.IsRecurring = *p.IsRecurring
	}
	if p.DueDate.Set {
		c.DueDate = copyPtr(p.DueDate.Value)
	}
	if p.RecurrencePattern.Set {
		c.RecurrencePattern = copyPtr(p.RecurrencePattern.Value)
	}
	if p.ReminderMinutes.Set {
		c.ReminderMinutes = copyPtr(p.ReminderMinutes.Value)
	}

	return c
}

// ChangesDueDate reports whether the patch supplies a due date that differs
// from the one existing already holds. Only such a due date is subject to
// the minimum lead time.
func (p *Patch) ChangesDueDate(existing *Todo) bool {
	if !p.DueDate.Set || p.DueDate.Value == nil {
		return false
	}
	return !equalTime(existing.DueDate, p.DueDate.Value)
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
