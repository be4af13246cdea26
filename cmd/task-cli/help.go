package main

import (
	"fmt"
	"strings"

	"github.com/amonks/taskcli/task"
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpFormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Describe the tasks file format",
	Args:  cobra.NoArgs,
	RunE:  runHelpFormat,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpFormatCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil || target == root {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpFormat(cmd *cobra.Command, args []string) error {
	var builder strings.Builder
	builder.WriteString("Tasks are stored as a JSON array of objects with these fields:\n\n")
	builder.WriteString("  id           positive integer, unique within the file\n")
	builder.WriteString("  description  non-empty text\n")
	fmt.Fprintf(&builder, "  status       one of: %s\n", strings.Join(statusNames(), ", "))
	fmt.Fprintf(&builder, "  createdAt    local time, %s\n", task.TimestampLayout)
	fmt.Fprintf(&builder, "  updatedAt    local time, %s\n", task.TimestampLayout)
	builder.WriteString("\nInvalid entries are skipped with a warning. JSON Schema:\n\n")
	builder.Write(task.SchemaJSON())
	_, err := fmt.Fprint(cmd.OutOrStdout(), builder.String())
	return err
}

func statusNames() []string {
	statuses := task.ValidStatuses()
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}
	return names
}
