package ui

import (
	"strings"
	"testing"

	"github.com/amonks/taskcli/task"
)

func TestStatusLabelPlainWithoutTerminal(t *testing.T) {
	original := ansiEnabled
	ansiEnabled = func() bool { return false }
	t.Cleanup(func() { ansiEnabled = original })

	for _, status := range task.ValidStatuses() {
		if got := StatusLabel(status); got != string(status) {
			t.Fatalf("expected plain %q, got %q", status, got)
		}
	}
	if got := HighlightID("7"); got != "7" {
		t.Fatalf("expected plain ID, got %q", got)
	}
	if got := Label("Status:"); got != "Status:" {
		t.Fatalf("expected plain label, got %q", got)
	}
}

func TestStatusLabelKeepsText(t *testing.T) {
	original := ansiEnabled
	ansiEnabled = func() bool { return true }
	t.Cleanup(func() { ansiEnabled = original })

	for _, status := range task.ValidStatuses() {
		if got := StatusLabel(status); !strings.Contains(got, string(status)) {
			t.Fatalf("expected %q to contain %q", got, status)
		}
	}
}

func TestAnsiEnabledHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ansiEnabled() {
		t.Fatal("expected NO_COLOR to disable styling")
	}
}
