package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/taskcli/task"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce   sync.Once
	taskCLIPath string
	buildErr    error
)

// BuildTaskCLI builds the task-cli binary once and returns its path.
func BuildTaskCLI(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "task-cli-bin-")
		if err != nil {
			buildErr = err
			return
		}

		taskCLIPath = filepath.Join(binDir, "task-cli")
		cmd := exec.Command("go", "build", "-o", taskCLIPath, "./cmd/task-cli")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build task-cli: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return taskCLIPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKCLI", BuildTaskCLI(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	env.Setenv("TASK_CLI_FILE", "")
	env.Setenv("TASK_CLI_LOG_LEVEL", "")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTaskCount checks how many tasks a tasks file decodes to.
func CmdTaskCount(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: taskcount FILE N")
	}

	result := task.Decode([]byte(ts.ReadFile(args[0])))
	got := fmt.Sprint(len(result.Tasks))
	if (got == args[1]) == neg {
		if neg {
			ts.Fatalf("%s has %s tasks, want any other count", args[0], got)
		}
		ts.Fatalf("%s has %s tasks, want %s", args[0], got, args[1])
	}
}

// CmdTaskStatus checks the stored status of a task by ID.
func CmdTaskStatus(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskstatus does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskstatus FILE ID STATUS")
	}

	result := task.Decode([]byte(ts.ReadFile(args[0])))
	for _, item := range result.Tasks {
		if fmt.Sprint(item.ID()) == args[1] {
			if string(item.Status()) != args[2] {
				ts.Fatalf("task %s has status %s, want %s", args[1], item.Status(), args[2])
			}
			return
		}
	}

	ts.Fatalf("task with ID %s not found", args[1])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
