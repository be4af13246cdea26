// Package logging builds the diagnostics logger used by task-cli.
//
// Diagnostics (skipped tasks, damaged files) go to stderr through logrus so
// they never mix with command output on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Options configures New.
type Options struct {
	// Level is a logrus level name (debug, info, warn, error).
	// Empty means DefaultLevel.
	Level string

	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer

	// JSON switches to one JSON object per line.
	JSON bool
}

// New returns a configured logger.
func New(opts Options) (*logrus.Logger, error) {
	level := strings.TrimSpace(opts.Level)
	if level == "" {
		level = DefaultLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetLevel(parsed)
	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableQuote:     true,
		})
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
