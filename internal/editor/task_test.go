package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/taskcli/task"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	content, err := RenderTaskTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "status = ") {
			t.Error("status should not be present for create")
		}
	}

	parsedFrontmatter, body := splitFrontmatter(content)
	if strings.TrimSpace(body) != "" {
		t.Errorf("expected empty body, got %q", body)
	}
	if !strings.HasPrefix(parsedFrontmatter, "# New task.") {
		t.Errorf("expected create header, got %q", parsedFrontmatter)
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	existing := task.New(3, "Write the report", now)
	if err := existing.SetStatus(task.StatusInProgress, now); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.Contains(content, "# Editing task 3.") {
		t.Error("expected task ID in header")
	}
	if !strings.Contains(content, `status = "in-progress" # todo, in-progress, done`) {
		t.Errorf("expected status line, got:\n%s", content)
	}
	if !strings.HasSuffix(content, "---\nWrite the report\n") {
		t.Errorf("expected description in body, got:\n%s", content)
	}
}

func TestRenderedUpdateFormParses(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	content, err := RenderTaskTOML(DataFromTask(task.New(1, "Buy milk", now)))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Description != "Buy milk" {
		t.Errorf("expected description %q, got %q", "Buy milk", parsed.Description)
	}
	if parsed.Status == nil || *parsed.Status != task.StatusTodo {
		t.Errorf("expected status todo, got %v", parsed.Status)
	}
}

func TestParseTaskTOML(t *testing.T) {
	content := "status = \"Done\"\n---\nThis is a description\r\nwith multiple lines\n\n"

	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}

	if parsed.Status == nil || *parsed.Status != task.StatusDone {
		t.Errorf("expected status done, got %v", parsed.Status)
	}
	if parsed.Description != "This is a description with multiple lines" {
		t.Errorf("expected joined description, got %q", parsed.Description)
	}
}

func TestParseTaskTOML_NoStatus(t *testing.T) {
	parsed, err := ParseTaskTOML("# comment only\n---\nhello\n")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Status != nil {
		t.Errorf("expected nil status, got %v", *parsed.Status)
	}
	if parsed.Description != "hello" {
		t.Errorf("expected description %q, got %q", "hello", parsed.Description)
	}
}

func TestParseTaskTOML_EmptyDescription(t *testing.T) {
	_, err := ParseTaskTOML("---\n   \n\n")
	if !errors.Is(err, task.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestParseTaskTOML_InvalidStatus(t *testing.T) {
	_, err := ParseTaskTOML("status = \"blocked\"\n---\nhello\n")
	if !errors.Is(err, task.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParseTaskTOML_UnknownKey(t *testing.T) {
	_, err := ParseTaskTOML("priority = 1\n---\nhello\n")
	if err == nil || !strings.Contains(err.Error(), "priority") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestParseTaskTOML_InvalidTOML(t *testing.T) {
	_, err := ParseTaskTOML("status = \n---\nhello\n")
	if err == nil || !strings.Contains(err.Error(), "parse TOML") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSplitFrontmatter_NoSeparator(t *testing.T) {
	frontmatter, body := splitFrontmatter("status = \"todo\"\n")
	if frontmatter != "status = \"todo\"\n" {
		t.Errorf("unexpected frontmatter %q", frontmatter)
	}
	if body != "" {
		t.Errorf("expected empty body, got %q", body)
	}
}

func TestCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Command(); len(got) != 1 || got[0] != "vi" {
		t.Errorf("expected vi fallback, got %v", got)
	}

	t.Setenv("EDITOR", "code --wait")
	if got := Command(); strings.Join(got, " ") != "code --wait" {
		t.Errorf("expected EDITOR fields, got %v", got)
	}

	t.Setenv("VISUAL", "nano")
	if got := Command(); strings.Join(got, " ") != "nano" {
		t.Errorf("expected VISUAL to win, got %v", got)
	}
}

func TestEditTaskWithData_UsesEditor(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-editor")
	body := "#!/bin/sh\nprintf 'status = \"done\"\\n---\\nedited   text\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	parsed, err := EditTaskWithData(TaskData{IsUpdate: true, ID: 1, Status: "todo", Description: "old"})
	if err != nil {
		t.Fatalf("EditTaskWithData failed: %v", err)
	}
	if parsed.Description != "edited text" {
		t.Errorf("expected edited description, got %q", parsed.Description)
	}
	if parsed.Status == nil || *parsed.Status != task.StatusDone {
		t.Errorf("expected status done, got %v", parsed.Status)
	}
}

func TestEdit_ReportsExitStatus(t *testing.T) {
	script := filepath.Join(t.TempDir(), "failing-editor")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	err := Edit(filepath.Join(t.TempDir(), "file"))
	if err == nil || err.Error() != "editor exited with status 3" {
		t.Fatalf("expected exit status error, got %v", err)
	}
}
