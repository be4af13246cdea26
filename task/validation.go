package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/taskcli/internal/strings"
	"github.com/amonks/taskcli/internal/validation"
)

var (
	// ErrEmptyDescription is returned when a task description is empty.
	ErrEmptyDescription = errors.New("task description cannot be empty")

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidID is returned when a task ID argument is not a usable integer.
	ErrInvalidID = errors.New("invalid task ID")

	// ErrTaskNotFound is returned when no task has the given ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrIDSpaceExhausted is returned when the next ID would overflow int.
	ErrIDSpaceExhausted = errors.New("cannot generate new task ID, maximum integer value reached")

	// ErrFormat marks structural problems in the backing file.
	ErrFormat = errors.New("invalid JSON format")

	// ErrSkippedTask marks a stored task that was dropped during decoding.
	ErrSkippedTask = errors.New("skipping task")
)

// FormatError describes a structural problem found while decoding.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (%s)", ErrFormat, e.Reason)
}

// Unwrap returns ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// FieldProblem names one invalid field of a stored task.
type FieldProblem struct {
	Field  string
	Reason string
}

// SkipError explains why a stored task was skipped.
type SkipError struct {
	// ID is the raw id text, possibly empty.
	ID     string
	Fields []FieldProblem
}

func (e *SkipError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldProblem{Field: field, Reason: reason})
}

func (e *SkipError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, problem := range e.Fields {
		parts = append(parts, problem.Field+" "+problem.Reason)
	}
	id := e.ID
	if id == "" {
		id = "?"
	}
	return fmt.Sprintf("%s ID %s: %s", ErrSkippedTask, id, strings.Join(parts, "; "))
}

// Unwrap returns ErrSkippedTask.
func (e *SkipError) Unwrap() error {
	return ErrSkippedTask
}

// HasField reports whether the named field was one of the skip reasons.
func (e *SkipError) HasField(field string) bool {
	for _, problem := range e.Fields {
		if problem.Field == field {
			return true
		}
	}
	return false
}

// ValidateDescription checks that a description has visible content.
func ValidateDescription(description string) error {
	if internalstrings.NormalizeWhitespace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ParseStatus converts user input into a Status.
func ParseStatus(value string) (Status, error) {
	status := normalizeStatus(Status(value))
	if !status.IsValid() {
		return "", fmt.Errorf("%w %q: use %s", ErrInvalidStatus, value, validStatusList())
	}
	return status, nil
}

// ParseFilter converts a list filter argument into a status pointer.
// "all" and the empty string return nil, meaning no filtering.
func ParseFilter(value string) (*Status, error) {
	normalized := internalstrings.NormalizeLowerTrimSpace(value)
	if normalized == "" || normalized == FilterAll {
		return nil, nil
	}
	status, err := ParseStatus(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid filter %q: use %s, %s", ErrInvalidStatus, value, FilterAll, validStatusList())
	}
	return &status, nil
}

// ParseID converts a task ID argument into an int.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is too large or too small", ErrInvalidID, value)
		}
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidID, value)
	}
	return id, nil
}

func validStatusList() string {
	return validation.FormatValidValues(ValidStatuses())
}
