package task

import (
	"fmt"
	"strconv"
	"time"
)

// Task represents a single tracked unit of work.
//
// Fields are read through accessors; description and status change only
// through SetDescription and SetStatus so that updatedAt always follows.
type Task struct {
	id          int
	description string
	status      Status
	createdAt   string
	updatedAt   string
}

// New creates a todo task with both timestamps set to now.
func New(id int, description string, now time.Time) Task {
	stamp := FormatTimestamp(now)
	return Task{
		id:          id,
		description: description,
		status:      StatusTodo,
		createdAt:   stamp,
		updatedAt:   stamp,
	}
}

// ID returns the task identifier.
func (t Task) ID() int { return t.id }

// Description returns the task text.
func (t Task) Description() string { return t.description }

// Status returns the current status.
func (t Task) Status() Status { return t.status }

// CreatedAt returns the creation timestamp string.
func (t Task) CreatedAt() string { return t.createdAt }

// UpdatedAt returns the last-modified timestamp string.
func (t Task) UpdatedAt() string { return t.updatedAt }

// SetDescription replaces the description and refreshes updatedAt.
func (t *Task) SetDescription(description string, now time.Time) {
	t.description = description
	t.updatedAt = FormatTimestamp(now)
}

// SetStatus changes the status and refreshes updatedAt.
// An invalid status leaves the task unchanged.
func (t *Task) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("%w %q for task %d: must be %s", ErrInvalidStatus, status, t.id, validStatusList())
	}
	t.status = status
	t.updatedAt = FormatTimestamp(now)
	return nil
}

// FormatTimestamp renders a time in TimestampLayout using local time.
func FormatTimestamp(now time.Time) string {
	return now.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp written by FormatTimestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, value, time.Local)
}

// RawTask holds the five fields of a task exactly as read from storage.
type RawTask struct {
	ID          string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// Build validates raw fields and returns a Task.
// When any field is invalid it returns a *SkipError naming each one.
func Build(raw RawTask) (Task, error) {
	skip := &SkipError{ID: raw.ID}

	var id int
	if raw.ID == "" {
		skip.add("id", "missing or invalid")
	} else {
		parsed, err := strconv.Atoi(raw.ID)
		switch {
		case err != nil:
			skip.add("id", fmt.Sprintf("not an integer: %v", err))
		case parsed <= 0:
			skip.add("id", fmt.Sprintf("must be positive, got %d", parsed))
		default:
			id = parsed
		}
	}

	if raw.Description == "" {
		skip.add("description", "missing")
	}

	status := Status(raw.Status)
	if raw.Status == "" || !status.IsValid() {
		skip.add("status", fmt.Sprintf("missing or invalid: %q", raw.Status))
	}

	if raw.CreatedAt == "" {
		skip.add("createdAt", "missing")
	}
	if raw.UpdatedAt == "" {
		skip.add("updatedAt", "missing")
	}

	if len(skip.Fields) > 0 {
		return Task{}, skip
	}

	return Task{
		id:          id,
		description: raw.Description,
		status:      status,
		createdAt:   raw.CreatedAt,
		updatedAt:   raw.UpdatedAt,
	}, nil
}
