// Package task implements a local task tracker backed by a single JSON file.
//
// Tasks are kept in a flat JSON array (tasks.json by default). Every command
// loads the whole file, applies one change in memory, and writes the whole
// file back.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Delete, Mark for the task lifecycle
//   - List, Show for querying
//   - Load, Save, NextID for direct store access
package task

import "strings"

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task has been completed.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// FilterAll is the list filter keyword that matches every status.
const FilterAll = "all"

// TimestampLayout is the layout of createdAt and updatedAt values.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultFile is the backing file name used when none is configured.
const DefaultFile = "tasks.json"

func normalizeStatus(status Status) Status {
	return Status(strings.ToLower(strings.TrimSpace(string(status))))
}
