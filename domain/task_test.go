package domain

import (
	"strings"
	"testing"
)

func TestTaskApplyDefaults(t *testing.T) {
	task := Task{Title: "write report"}
	task.ApplyDefaults()

	if task.Status != StatusPending {
		t.Errorf("status = %q, want %q", task.Status, StatusPending)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("priority = %q, want %q", task.Priority, PriorityMedium)
	}
	if task.Category != CategoryOther {
		t.Errorf("category = %q, want %q", task.Category, CategoryOther)
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{Title: "a", Status: StatusPending, Priority: PriorityHigh, Category: CategoryWork}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		task  Task
		field string
	}{
		{"missing title", Task{Status: StatusPending, Priority: PriorityLow, Category: CategoryOther}, "title"},
		{"title too long", Task{Title: strings.Repeat("x", 201), Status: StatusPending, Priority: PriorityLow, Category: CategoryOther}, "title"},
		{"bad status", Task{Title: "t", Status: "done", Priority: PriorityLow, Category: CategoryOther}, "status"},
		{"bad priority", Task{Title: "t", Status: StatusPending, Priority: "urgent", Category: CategoryOther}, "priority"},
		{"bad category", Task{Title: "t", Status: StatusPending, Priority: PriorityLow, Category: "misc"}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			fieldErrs, ok := err.(FieldErrors)
			if !ok {
				t.Fatalf("expected FieldErrors, got %T", err)
			}
			if len(fieldErrs[tt.field]) == 0 {
				t.Fatalf("expected error on field %q, got %v", tt.field, fieldErrs)
			}
		})
	}
}

func TestTaskIsOverdue(t *testing.T) {
	today := mustDate(t, "2025-06-15")
	yesterday := mustDate(t, "2025-06-14")
	tomorrow := mustDate(t, "2025-06-16")

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past due pending", Task{Status: StatusPending, DueDate: &yesterday}, true},
		{"past due in progress", Task{Status: StatusInProgress, DueDate: &yesterday}, true},
		{"past due but completed", Task{Status: StatusCompleted, DueDate: &yesterday}, false},
		{"due today", Task{Status: StatusPending, DueDate: &today}, false},
		{"due tomorrow", Task{Status: StatusPending, DueDate: &tomorrow}, false},
		{"no due date", Task{Status: StatusPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(today); got != tt.want {
				t.Fatalf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustDate(t *testing.T, value string) Date {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", value, err)
	}
	return d
}
