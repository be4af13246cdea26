package main

import (
	"strconv"
	"time"

	"github.com/amonks/taskcli/internal/ui"
	"github.com/amonks/taskcli/task"
)

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "DESCRIPTION"}, len(tasks))

	for _, t := range tasks {
		builder.AddRow([]string{
			ui.HighlightID(strconv.Itoa(t.ID())),
			ui.StatusLabel(t.Status()),
			ui.FormatTimestampAge(t.CreatedAt(), now),
			ui.TruncateTableCell(t.Description()),
		})
	}

	return builder.String()
}
