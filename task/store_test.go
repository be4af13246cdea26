package task

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return Open(path, Options{Now: func() time.Time { return testNow }})
}

func TestLoad_MissingFile(t *testing.T) {
	store := openTestStore(t)

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
	if _, err := os.Stat(store.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("load should not create the file, stat error: %v", err)
	}
}

func TestLoad_ReadError(t *testing.T) {
	dir := t.TempDir()
	store := Open(dir, Options{})

	if _, err := store.Load(); err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestLoad_LogsProblems(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"id": 1, "description": "ok", "status": "todo", "createdAt": "a", "updatedAt": "b"},
{"id": 2, "description": "bad", "status": "nope", "createdAt": "a", "updatedAt": "b"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	store := Open(path, Options{Logger: logger})
	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", entry.Level)
	}
	if !strings.Contains(entry.Message, "skipping task ID 2") {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.Data["file"] != path {
		t.Errorf("expected file field %q, got %v", path, entry.Data["file"])
	}
}

func TestSave_WritesAndReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(sampleTasks(3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(sampleTasks(1)); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != string(Encode(sampleTasks(1))) {
		t.Fatalf("unexpected file content:\n%s", data)
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	store := Open(path, Options{})

	if err := store.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[\n]\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestOpen_DefaultPath(t *testing.T) {
	if got := Open("", Options{}).Path(); got != DefaultFile {
		t.Fatalf("expected %s, got %s", DefaultFile, got)
	}
}

func TestNextID(t *testing.T) {
	withIDs := func(ids ...int) []Task {
		tasks := make([]Task, 0, len(ids))
		for _, id := range ids {
			tasks = append(tasks, New(id, "x", testNow))
		}
		return tasks
	}

	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{name: "empty", tasks: nil, want: 1},
		{name: "single", tasks: withIDs(1), want: 2},
		{name: "unordered", tasks: withIDs(5, 2), want: 6},
		{name: "gap", tasks: withIDs(1, 3), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextID(tt.tasks)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextID_Exhausted(t *testing.T) {
	_, err := NextID([]Task{New(math.MaxInt, "last", testNow)})
	if !errors.Is(err, ErrIDSpaceExhausted) {
		t.Fatalf("expected ErrIDSpaceExhausted, got %v", err)
	}
}
