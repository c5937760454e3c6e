package todo

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
)

// MinLeadTime is how far in the future a newly supplied due date must be.
const MinLeadTime = time.Minute

// Validation reasons reported to clients.
const (
	MsgTitleRequired      = "Title is required"
	MsgTitleEmpty         = "Title cannot be empty"
	MsgDueDateTooSoon     = "Due date must be at least 1 minute in the future"
	MsgInvalidPriority    = "Invalid priority value"
	MsgInvalidPattern     = "Invalid recurrence pattern"
	MsgRecurringNeedsDue  = "Due date is required for recurring todos"
	MsgRecurringNeedsRule = "Recurrence pattern is required for recurring todos"
	MsgNegativeReminder   = "Reminder minutes must not be negative"
)

// Field names used in validation verdicts.
const (
	FieldTitle             = "title"
	FieldDueDate           = "due_date"
	FieldPriority          = "priority"
	FieldRecurrencePattern = "recurrence_pattern"
	FieldReminderMinutes   = "reminder_minutes"
)

// Verdict is the outcome of one rule. An empty Reason means the rule passed.
type Verdict struct {
	Field  string
	Reason string
}

// Passed reports whether the rule accepted its input.
func (v Verdict) Passed() bool {
	return v.Reason == ""
}

func pass() Verdict { return Verdict{} }

func fail(field, reason string) Verdict {
	return Verdict{Field: field, Reason: reason}
}

// CheckTitle requires a title that is non-empty after trimming. creating
// selects the message: a missing title on create, an emptied one on update.
func CheckTitle(title string, creating bool) Verdict {
	if strings.TrimSpace(title) != "" {
		return pass()
	}
	if creating {
		return fail(FieldTitle, MsgTitleRequired)
	}
	return fail(FieldTitle, MsgTitleEmpty)
}

// CheckDueDate requires a supplied due date to be at least MinLeadTime after now.
// A nil due date passes.
func CheckDueDate(due *time.Time, now time.Time) Verdict {
	if due == nil || !due.Before(now.Add(MinLeadTime)) {
		return pass()
	}
	return fail(FieldDueDate, MsgDueDateTooSoon)
}

// CheckPriority requires one of the defined priorities.
func CheckPriority(p Priority) Verdict {
	if p.IsValid() {
		return pass()
	}
	return fail(FieldPriority, MsgInvalidPriority)
}

// CheckRecurrencePattern requires a present pattern to be one of the defined
// patterns. A nil pattern passes.
func CheckRecurrencePattern(p *Recurrence) Verdict {
	if p == nil || p.IsValid() {
		return pass()
	}
	return fail(FieldRecurrencePattern, MsgInvalidPattern)
}

// CheckRecurring requires a recurring todo to have both a due date and a pattern.
func CheckRecurring(isRecurring bool, due *time.Time, p *Recurrence) Verdict {
	switch {
	case !isRecurring:
		return pass()
	case due == nil:
		return fail(FieldDueDate, MsgRecurringNeedsDue)
	case p == nil:
		return fail(FieldRecurrencePattern, MsgRecurringNeedsRule)
	default:
		return pass()
	}
}

// CheckReminder rejects negative reminder offsets. A nil reminder passes.
func CheckReminder(minutes *int) Verdict {
	if minutes == nil || *minutes >= 0 {
		return pass()
	}
	return fail(FieldReminderMinutes, MsgNegativeReminder)
}

// Check bundles the inputs the rules are evaluated against.
type Check struct {
	// Candidate is the effective record after merging the request.
	Candidate *Todo
	// DueSupplied is true when this write sets a new due date.
	DueSupplied bool
	// Creating selects create-time messages.
	Creating bool
	// Now is the instant the write is evaluated at.
	Now time.Time
}

// Verdicts runs every rule in reporting order.
func (c Check) Verdicts() []Verdict {
	t := c.Candidate

	var due *time.Time
	if c.DueSupplied {
		due = t.DueDate
	}

	return []Verdict{
		CheckTitle(t.Title, c.Creating),
		CheckDueDate(due, c.Now),
		CheckPriority(t.Priority),
		CheckRecurrencePattern(t.RecurrencePattern),
		CheckRecurring(t.IsRecurring, t.DueDate, t.RecurrencePattern),
		CheckReminder(t.ReminderMinutes),
	}
}

// Err returns the first failing verdict as a *domain.ValidationError, or nil.
func (c Check) Err() error {
	for _, v := range c.Verdicts() {
		if !v.Passed() {
			return domain.NewValidationError(v.Field, v.Reason)
		}
	}
	return nil
}

// ValidateNew checks a todo about to be created.
func ValidateNew(t *Todo, now time.Time) error {
	return Check{
		Candidate:   t,
		DueSupplied: t.DueDate != nil,
		Creating:    true,
		Now:         now,
	}.Err()
}

// ValidateUpdate checks the effective candidate produced by applying patch to existing.
func ValidateUpdate(existing, candidate *Todo, patch *Patch, now time.Time) error {
	return Check{
		Candidate:   candidate,
		DueSupplied: patch.ChangesDueDate(existing),
		Now:         now,
	}.Err()
}
