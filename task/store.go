package task

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/taskcli/internal/logging"
	"github.com/sirupsen/logrus"
)

// Store reads and writes the task file at a fixed path.
// It performs no locking; concurrent writers race and the last save wins.
type Store struct {
	path   string
	now    func() time.Time
	logger logrus.FieldLogger
}

// Options configures a Store.
type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives decode diagnostics. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Open returns a store for the task file at path.
// The file does not need to exist yet.
func Open(path string, opts Options) *Store {
	if path == "" {
		path = DefaultFile
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Store{
		path:   path,
		now:    opts.Now,
		logger: opts.Logger.WithField("file", path),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every task from the backing file.
//
// A missing file yields no tasks. Malformed content is never an error: each
// decode problem is logged as a warning and the tasks that survived are
// returned.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	result := Decode(data)
	for _, problem := range result.Problems {
		s.logger.Warn(problem.Error())
	}
	return result.Tasks, nil
}

// Save replaces the backing file with the encoded tasks.
// The new content is written to a temp file and renamed into place.
func (s *Store) Save(tasks []Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", s.path, err)
	}

	if err := EncodeTo(f, tasks); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.WithField("tasks", len(tasks)).Debug("saved tasks")
	return nil
}

// NextID returns the identifier for a new task: one more than the highest
// ID present, or 1 for an empty list.
//
// IDs are not tracked after deletion, so deleting the highest task lets its
// ID be issued again.
func NextID(tasks []Task) (int, error) {
	maxID := 0
	for _, t := range tasks {
		if t.id > maxID {
			maxID = t.id
		}
	}
	if maxID >= math.MaxInt {
		return 0, ErrIDSpaceExhausted
	}
	return maxID + 1, nil
}
