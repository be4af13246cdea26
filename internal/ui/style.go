package ui

import (
	"os"

	"github.com/amonks/taskcli/task"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	todoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true)
	idStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	labelStyle      = lipgloss.NewStyle().Bold(true)
)

// StatusLabel returns the status text, colored when stdout supports it.
func StatusLabel(status task.Status) string {
	value := string(status)
	if !ansiEnabled() {
		return value
	}
	switch status {
	case task.StatusTodo:
		return todoStyle.Render(value)
	case task.StatusInProgress:
		return inProgressStyle.Render(value)
	case task.StatusDone:
		return doneStyle.Render(value)
	default:
		return value
	}
}

// HighlightID returns a task ID, highlighted when stdout supports it.
func HighlightID(id string) string {
	if id == "" || !ansiEnabled() {
		return id
	}
	return idStyle.Render(id)
}

// Label returns a bold field label for detail views.
func Label(value string) string {
	if !ansiEnabled() {
		return value
	}
	return labelStyle.Render(value)
}

// ansiEnabled is a variable so tests can force styling on.
var ansiEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
