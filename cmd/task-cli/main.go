// Package main implements the task-cli tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/taskcli/internal/config"
	"github.com/amonks/taskcli/internal/logging"
	"github.com/amonks/taskcli/internal/paths"
	"github.com/amonks/taskcli/task"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "task-cli",
	Short: "Track tasks in a local JSON file",
	Long: `Track tasks in a local JSON file.

Tasks live in tasks.json in the current directory unless --file,
TASK_CLI_FILE, or a task-cli.toml config file says otherwise.`,
	SilenceUsage: true,
}

var (
	rootFile     string
	rootLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Tasks file (default: tasks.json in the current directory)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Diagnostics level: debug, info, warn, error")
}

// openTaskStore resolves configuration and opens the tasks file.
// Flags win over environment variables, which win over config files.
func openTaskStore() (*task.Store, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	logger, err := logging.New(logging.Options{Level: level, JSON: cfg.JSONLogs()})
	if err != nil {
		return nil, err
	}

	file := cfg.TasksFile(cwd)
	if rootFile != "" {
		file, err = paths.Resolve(cwd, rootFile)
		if err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{"file": file, "cwd": cwd}).Debug("opening tasks file")
	return task.Open(file, task.Options{Logger: logger}), nil
}
