package main

import (
	"fmt"

	"github.com/amonks/taskcli/task"
)

func taskEmptyListMessage(filter *task.Status) string {
	if filter == nil {
		return "No tasks found."
	}
	return fmt.Sprintf("No tasks found with status '%s'.", *filter)
}
