package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/taskcli/internal/markdown"
	"github.com/amonks/taskcli/internal/ui"
	"github.com/amonks/taskcli/task"
)

const taskDetailLineWidth = 80

const taskBlockSeparator = "-------------"

// formatTaskDetail renders one task for the show command.
func formatTaskDetail(t task.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s       %s\n", ui.Label("ID:"), ui.HighlightID(strconv.Itoa(t.ID())))
	fmt.Fprintf(&b, "%s   %s\n", ui.Label("Status:"), ui.StatusLabel(t.Status()))
	fmt.Fprintf(&b, "%s  %s\n", ui.Label("Created:"), timestampWithAge(t.CreatedAt(), now))
	fmt.Fprintf(&b, "%s  %s\n", ui.Label("Updated:"), timestampWithAge(t.UpdatedAt(), now))
	fmt.Fprintf(&b, "\n%s\n%s\n", ui.Label("Description:"), formatTaskDescription(t.Description()))
	return b.String()
}

func formatTaskDescription(value string) string {
	rendered := markdown.SafeRender(taskDetailLineWidth, 2, []byte(value))
	if len(rendered) == 0 {
		return "  -"
	}
	return string(rendered)
}

func timestampWithAge(value string, now time.Time) string {
	then, err := task.ParseTimestamp(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s (%s)", value, ui.FormatTimeAgo(then, now))
}

// formatTaskBlocks renders tasks as labelled blocks for list --long.
func formatTaskBlocks(tasks []task.Task, filter *task.Status) string {
	var b strings.Builder
	b.WriteString("--- Tasks")
	if filter != nil {
		fmt.Fprintf(&b, " (Status: %s)", *filter)
	}
	b.WriteString(" ---\n")

	for _, t := range tasks {
		fmt.Fprintf(&b, "ID: %d\n", t.ID())
		fmt.Fprintf(&b, "  Description: %s\n", t.Description())
		fmt.Fprintf(&b, "  Status: %s\n", t.Status())
		fmt.Fprintf(&b, "  Created: %s\n", t.CreatedAt())
		fmt.Fprintf(&b, "  Updated: %s\n", t.UpdatedAt())
		b.WriteString(taskBlockSeparator + "\n")
	}

	if len(tasks) == 0 {
		b.WriteString(taskEmptyListMessage(filter) + "\n")
		b.WriteString(taskBlockSeparator + "\n")
	}
	return b.String()
}
