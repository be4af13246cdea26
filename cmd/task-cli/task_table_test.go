package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/taskcli/task"
)

func TestFormatTaskTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	now := created.Add(90 * time.Minute)

	first := task.New(1, "Buy milk", created)
	second := task.New(12, "Write\nreport", created.Add(-48*time.Hour))

	got := formatTaskTable([]task.Task{first, second}, now)

	want := "ID  STATUS  AGE  DESCRIPTION\n" +
		"1   todo    1h   Buy milk\n" +
		"12  todo    2d   Write report\n"
	if got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTaskTableTruncatesDescription(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	long := strings.Repeat("word ", 30)

	got := formatTaskTable([]task.Task{task.New(1, long, now)}, now)

	if !strings.Contains(got, "...") {
		t.Fatalf("expected truncated description, got %q", got)
	}
}
