package task

import "fmt"

// Add creates a todo task with the next free ID and saves it.
func (s *Store) Add(description string) (Task, error) {
	if err := ValidateDescription(description); err != nil {
		return Task{}, err
	}

	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	id, err := NextID(tasks)
	if err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}

	created := New(id, description, s.now())
	tasks = append(tasks, created)

	if err := s.Save(tasks); err != nil {
		return Task{}, fmt.Errorf("write tasks: %w", err)
	}

	return created, nil
}

// Update replaces the description of the task with the given ID.
func (s *Store) Update(id int, description string) (Task, error) {
	if err := ValidateDescription(description); err != nil {
		return Task{}, err
	}

	return s.mutate(id, "update", func(t *Task) error {
		t.SetDescription(description, s.now())
		return nil
	})
}

// Mark sets the status of the task with the given ID.
func (s *Store) Mark(id int, status Status) (Task, error) {
	if !status.IsValid() {
		return Task{}, fmt.Errorf("%w %q: use %s", ErrInvalidStatus, status, validStatusList())
	}

	return s.mutate(id, "mark status", func(t *Task) error {
		return t.SetStatus(status, s.now())
	})
}

// Edit replaces the description of a task and, when status is non-nil, its
// status, with a single save.
func (s *Store) Edit(id int, description string, status *Status) (Task, error) {
	if err := ValidateDescription(description); err != nil {
		return Task{}, err
	}
	if status != nil && !status.IsValid() {
		return Task{}, fmt.Errorf("%w %q: use %s", ErrInvalidStatus, *status, validStatusList())
	}

	return s.mutate(id, "edit", func(t *Task) error {
		now := s.now()
		t.SetDescription(description, now)
		if status == nil {
			return nil
		}
		return t.SetStatus(*status, now)
	})
}

// Start marks a task as in progress.
func (s *Store) Start(id int) (Task, error) {
	return s.Mark(id, StatusInProgress)
}

// Finish marks a task as done.
func (s *Store) Finish(id int) (Task, error) {
	return s.Mark(id, StatusDone)
}

// Reopen marks a task as todo.
func (s *Store) Reopen(id int) (Task, error) {
	return s.Mark(id, StatusTodo)
}

// Delete removes the task with the given ID and returns it.
func (s *Store) Delete(id int) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	index := indexByID(tasks, id)
	if index < 0 {
		return Task{}, notFoundError(id, "deletion")
	}

	removed := tasks[index]
	tasks = append(tasks[:index], tasks[index+1:]...)

	if err := s.Save(tasks); err != nil {
		return Task{}, fmt.Errorf("write tasks: %w", err)
	}

	return removed, nil
}

// Show returns the task with the given ID.
func (s *Store) Show(id int) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	index := indexByID(tasks, id)
	if index < 0 {
		return Task{}, notFoundError(id, "show")
	}
	return tasks[index], nil
}

// ListFilter configures which tasks to return.
type ListFilter struct {
	// Status filters by exact status match. Nil matches every task.
	Status *Status
}

// List returns tasks matching the filter in stored order.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w %q: use %s", ErrInvalidStatus, *filter.Status, validStatusList())
	}

	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}

	return FilterTasks(tasks, filter), nil
}

// FilterTasks applies filter to tasks without touching storage.
func FilterTasks(tasks []Task, filter ListFilter) []Task {
	var result []Task
	for _, t := range tasks {
		if filter.Status != nil && t.status != *filter.Status {
			continue
		}
		result = append(result, t)
	}
	return result
}

// mutate loads all tasks, applies fn to the one with the given ID, and saves.
// Nothing is saved when the task is missing or fn fails.
func (s *Store) mutate(id int, action string, fn func(*Task) error) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	index := indexByID(tasks, id)
	if index < 0 {
		return Task{}, notFoundError(id, action)
	}

	if err := fn(&tasks[index]); err != nil {
		return Task{}, err
	}

	if err := s.Save(tasks); err != nil {
		return Task{}, fmt.Errorf("write tasks: %w", err)
	}

	return tasks[index], nil
}

func indexByID(tasks []Task, id int) int {
	for i := range tasks {
		if tasks[i].id == id {
			return i
		}
	}
	return -1
}

func notFoundError(id int, action string) error {
	return fmt.Errorf("%w for %s: ID %d", ErrTaskNotFound, action, id)
}
