package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/taskcli/internal/strings"
	"github.com/amonks/taskcli/internal/validation"
	"github.com/amonks/taskcli/task"
)

// TaskData represents the data used to render the task form.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID int
	// Status is the task status (only for updates).
	Status string
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t task.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID(),
		Status:      string(t.Status()),
		Description: t.Description(),
	}
}

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"statuses": func() string {
		return validation.FormatValidValues(task.ValidStatuses())
	},
}).Parse(`{{- if .IsUpdate }}# Editing task {{ .ID }}.
status = {{ printf "%q" .Status }} # {{ statuses }}
{{- else }}# New task. New tasks start as "todo".
{{- end }}
# Write the description below the line. Lines are joined with spaces.
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML form for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the editor output.
type ParsedTask struct {
	Status      *task.Status
	Description string
}

type taskFrontmatter struct {
	Status *string `toml:"status"`
}

// ParseTaskTOML parses the form content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var fm taskFrontmatter
	meta, err := toml.Decode(frontmatter, &fm)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse TOML: unknown key %q", undecoded[0].String())
	}

	parsed := ParsedTask{Description: internalstrings.NormalizeWhitespace(body)}
	if err := task.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if fm.Status != nil {
		status, err := task.ParseStatus(*fm.Status)
		if err != nil {
			return nil, err
		}
		parsed.Status = &status
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTaskWithData opens the editor with pre-populated data and returns the
// parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "task-cli-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}
