package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// requireValidationReason asserts err wraps domain.ErrValidation and reports
// reason for field.
func requireValidationReason(t *testing.T, err error, field, reason string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if got := verr.Fields[field]; got != reason {
		t.Errorf("Fields[%q] = %q, want %q (all: %v)", field, got, reason, verr.Fields)
	}
	if len(verr.Fields) != 1 {
		t.Errorf("len(Fields) = %d, want exactly one reported failure", len(verr.Fields))
	}
}

func TestCheckTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		creating bool
		want     string
	}{
		{name: "plain title", title: "Buy milk", creating: true},
		{name: "padded title", title: "  Buy milk  ", creating: false},
		{name: "empty on create", title: "", creating: true, want: MsgTitleRequired},
		{name: "blank on create", title: " \t\n", creating: true, want: MsgTitleRequired},
		{name: "blank on update", title: "   ", creating: false, want: MsgTitleEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CheckTitle(tt.title, tt.creating); got.Reason != tt.want {
				t.Errorf("CheckTitle(%q) reason = %q, want %q", tt.title, got.Reason, tt.want)
			}
		})
	}
}

func TestCheckDueDate(t *testing.T) {
	t.Parallel()

	now := at(2024, time.June, 1, 12, 0)

	tests := []struct {
		name string
		due  *time.Time
		pass bool
	}{
		{name: "absent", due: nil, pass: true},
		{name: "exactly one minute ahead", due: ptr(now.Add(time.Minute)), pass: true},
		{name: "two days ahead", due: ptr(now.AddDate(0, 0, 2)), pass: true},
		{name: "59 seconds ahead", due: ptr(now.Add(59 * time.Second)), pass: false},
		{name: "now", due: ptr(now), pass: false},
		{name: "in the past", due: ptr(now.Add(-time.Hour)), pass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CheckDueDate(tt.due, now)
			if got.Passed() != tt.pass {
				t.Errorf("CheckDueDate() passed = %v, want %v", got.Passed(), tt.pass)
			}
			if !tt.pass && got.Reason != MsgDueDateTooSoon {
				t.Errorf("reason = %q, want %q", got.Reason, MsgDueDateTooSoon)
			}
		})
	}
}

func TestCheckPriorityAndPattern(t *testing.T) {
	t.Parallel()

	if v := CheckPriority(PriorityLow); !v.Passed() {
		t.Errorf("CheckPriority(low) = %+v, want pass", v)
	}
	if v := CheckPriority("urgent"); v.Reason != MsgInvalidPriority {
		t.Errorf("CheckPriority(urgent) reason = %q, want %q", v.Reason, MsgInvalidPriority)
	}
	if v := CheckRecurrencePattern(nil); !v.Passed() {
		t.Errorf("CheckRecurrencePattern(nil) = %+v, want pass", v)
	}
	if v := CheckRecurrencePattern(ptr(Recurrence("hourly"))); v.Reason != MsgInvalidPattern {
		t.Errorf("CheckRecurrencePattern(hourly) reason = %q, want %q", v.Reason, MsgInvalidPattern)
	}
	if v := CheckReminder(ptr(-5)); v.Reason != MsgNegativeReminder {
		t.Errorf("CheckReminder(-5) reason = %q, want %q", v.Reason, MsgNegativeReminder)
	}
	if v := CheckReminder(ptr(0)); !v.Passed() {
		t.Errorf("CheckReminder(0) = %+v, want pass", v)
	}
}

func TestCheckRecurring(t *testing.T) {
	t.Parallel()

	due := ptr(at(2024, time.June, 2, 9, 0))
	daily := ptr(RecurrenceDaily)

	tests := []struct {
		name      string
		recurring bool
		due       *time.Time
		pattern   *Recurrence
		field     string
		reason    string
	}{
		{name: "not recurring", recurring: false},
		{name: "complete recurrence", recurring: true, due: due, pattern: daily},
		{
			name: "missing due date", recurring: true, pattern: daily,
			field: FieldDueDate, reason: MsgRecurringNeedsDue,
		},
		{
			name: "missing pattern", recurring: true, due: due,
			field: FieldRecurrencePattern, reason: MsgRecurringNeedsRule,
		},
		{
			name: "missing both reports due date first", recurring: true,
			field: FieldDueDate, reason: MsgRecurringNeedsDue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CheckRecurring(tt.recurring, tt.due, tt.pattern)
			if got.Field != tt.field || got.Reason != tt.reason {
				t.Errorf("CheckRecurring() = %+v, want {%s %s}", got, tt.field, tt.reason)
			}
		})
	}
}

func TestValidateNew_ReportsFirstFailureInOrder(t *testing.T) {
	t.Parallel()

	now := at(2024, time.June, 1, 12, 0)
	past := now.Add(-time.Hour)
	bad := Recurrence("hourly")

	tests := []struct {
		name   string
		todo   Todo
		field  string
		reason string
	}{
		{
			name:   "title beats everything",
			todo:   Todo{Title: "", DueDate: &past, Priority: "urgent", RecurrencePattern: &bad, IsRecurring: true},
			field:  FieldTitle,
			reason: MsgTitleRequired,
		},
		{
			name:   "due date before priority",
			todo:   Todo{Title: "x", DueDate: &past, Priority: "urgent"},
			field:  FieldDueDate,
			reason: MsgDueDateTooSoon,
		},
		{
			name:   "priority before pattern",
			todo:   Todo{Title: "x", Priority: "urgent", RecurrencePattern: &bad},
			field:  FieldPriority,
			reason: MsgInvalidPriority,
		},
		{
			name:   "pattern before recurring precondition",
			todo:   Todo{Title: "x", Priority: PriorityHigh, RecurrencePattern: &bad, IsRecurring: true},
			field:  FieldRecurrencePattern,
			reason: MsgInvalidPattern,
		},
		{
			name:   "recurring without due date",
			todo:   Todo{Title: "x", Priority: PriorityHigh, IsRecurring: true, RecurrencePattern: ptr(RecurrenceWeekly)},
			field:  FieldDueDate,
			reason: MsgRecurringNeedsDue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationReason(t, ValidateNew(&tt.todo, now), tt.field, tt.reason)
		})
	}
}

func TestValidateNew_Valid(t *testing.T) {
	t.Parallel()

	now := at(2024, time.June, 1, 12, 0)
	due := now.AddDate(0, 0, 2)

	td := Todo{
		Title:             "Pay rent",
		DueDate:           &due,
		Priority:          PriorityHigh,
		IsRecurring:       true,
		RecurrencePattern: ptr(RecurrenceMonthly),
	}

	if err := ValidateNew(&td, now); err != nil {
		t.Fatalf("ValidateNew() = %v, want nil", err)
	}
}

func TestValidateUpdate_UsesEffectiveValues(t *testing.T) {
	t.Parallel()

	now := at(2024, time.June, 1, 12, 0)
	due := now.AddDate(0, 0, 3)

	existing := Todo{Title: "Water plants", DueDate: &due, Priority: PriorityMedium}

	t.Run("enable recurrence relying on stored due date", func(t *testing.T) {
		t.Parallel()
		patch := Patch{IsRecurring: ptr(true), RecurrencePattern: Some(RecurrenceWeekly)}
		candidate := patch.Apply(&existing)
		if err := ValidateUpdate(&existing, &candidate, &patch, now); err != nil {
			t.Fatalf("ValidateUpdate() = %v, want nil", err)
		}
	})

	t.Run("clearing due date of a recurring todo fails", func(t *testing.T) {
		t.Parallel()
		recurring := existing.Clone()
		recurring.IsRecurring = true
		recurring.RecurrencePattern = ptr(RecurrenceDaily)

		patch := Patch{DueDate: Null[time.Time]()}
		candidate := patch.Apply(&recurring)
		err := ValidateUpdate(&recurring, &candidate, &patch, now)
		requireValidationReason(t, err, FieldDueDate, MsgRecurringNeedsDue)
	})

	t.Run("clearing due date while disabling recurrence passes", func(t *testing.T) {
		t.Parallel()
		recurring := existing.Clone()
		recurring.IsRecurring = true
		recurring.RecurrencePattern = ptr(RecurrenceDaily)

		patch := Patch{DueDate: Null[time.Time](), IsRecurring: ptr(false)}
		candidate := patch.Apply(&recurring)
		if err := ValidateUpdate(&recurring, &candidate, &patch, now); err != nil {
			t.Fatalf("ValidateUpdate() = %v, want nil", err)
		}
	})

	t.Run("stored overdue due date is not re-validated", func(t *testing.T) {
		t.Parallel()
		overdue := existing.Clone()
		past := now.Add(-48 * time.Hour)
		overdue.DueDate = &past

		patch := Patch{Completed: ptr(true)}
		candidate := patch.Apply(&overdue)
		if err := ValidateUpdate(&overdue, &candidate, &patch, now); err != nil {
			t.Fatalf("ValidateUpdate() = %v, want nil", err)
		}
	})

	t.Run("resubmitting the stored overdue due date passes", func(t *testing.T) {
		t.Parallel()
		overdue := existing.Clone()
		past := now.Add(-48 * time.Hour)
		overdue.DueDate = &past

		patch := Patch{DueDate: Some(past), Title: ptr("Water plants")}
		candidate := patch.Apply(&overdue)
		if err := ValidateUpdate(&overdue, &candidate, &patch, now); err != nil {
			t.Fatalf("ValidateUpdate() = %v, want nil", err)
		}
	})

	t.Run("a different past due date fails", func(t *testing.T) {
		t.Parallel()
		overdue := existing.Clone()
		past := now.Add(-48 * time.Hour)
		overdue.DueDate = &past

		patch := Patch{DueDate: Some(past.Add(time.Hour))}
		candidate := patch.Apply(&overdue)
		err := ValidateUpdate(&overdue, &candidate, &patch, now)
		requireValidationReason(t, err, FieldDueDate, MsgDueDateTooSoon)
	})

	t.Run("new due date too soon fails", func(t *testing.T) {
		t.Parallel()
		patch := Patch{DueDate: Some(now.Add(30 * time.Second))}
		candidate := patch.Apply(&existing)
		err := ValidateUpdate(&existing, &candidate, &patch, now)
		requireValidationReason(t, err, FieldDueDate, MsgDueDateTooSoon)
	})

	t.Run("emptied title uses update message", func(t *testing.T) {
		t.Parallel()
		patch := Patch{Title: ptr("  ")}
		candidate := patch.Apply(&existing)
		err := ValidateUpdate(&existing, &candidate, &patch, now)
		requireValidationReason(t, err, FieldTitle, MsgTitleEmpty)
	})
}
