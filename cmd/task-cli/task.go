package main

import (
	"fmt"
	"time"

	"github.com/amonks/taskcli/internal/editor"
	"github.com/amonks/taskcli/task"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long: `Add a new task with status "todo".

Quote descriptions that contain spaces. With --edit, $EDITOR opens a
form instead and the argument, if given, pre-fills it. Run from a
terminal without a description, add opens the form unless --no-edit is
given.`,
	Example: `  task-cli add "Submit project report"`,
	Args:    addArgs,
	RunE:    runAdd,
}

var (
	addEdit   bool
	addNoEdit bool
)

// update
var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update a task description",
	Long: `Update a task description.

With --edit, $EDITOR opens a form holding the current description and
status, and the description argument becomes optional. Run from a
terminal without a description, update opens the form unless --no-edit
is given.`,
	Args: updateArgs,
	RunE: runUpdate,
}

var (
	updateEdit   bool
	updateNoEdit bool
)

// stdinIsTerminal reports whether the editor may open without --edit.
var stdinIsTerminal = editor.IsInteractive

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by ID",
	Args:  exactArgs(1, "one argument (id)"),
	RunE:  runDelete,
}

// show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  exactArgs(1, "one argument (id)"),
	RunE:  runShow,
}

var showJSON bool

// list
var listCmd = &cobra.Command{
	Use:   "list [all|todo|in-progress|done]",
	Short: "List tasks (default: all)",
	Example: `  task-cli list
  task-cli list todo
  task-cli list done --json`,
	Args: rangeArgs(0, 1, "at most one argument (filter)"),
	RunE: runList,
}

var (
	listLong bool
	listJSON bool
	listYAML bool
)

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, showCmd, listCmd)
	rootCmd.AddCommand(
		markCommand("mark-in-progress", task.StatusInProgress, (*task.Store).Start),
		markCommand("mark-done", task.StatusDone, (*task.Store).Finish),
		markCommand("mark-todo", task.StatusTodo, (*task.Store).Reopen),
	)

	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Write the description in $EDITOR")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Never open $EDITOR")
	addCmd.MarkFlagsMutuallyExclusive("edit", "no-edit")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Edit the task in $EDITOR")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Never open $EDITOR")
	updateCmd.MarkFlagsMutuallyExclusive("edit", "no-edit")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show each task as a detail block")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")
	listCmd.MarkFlagsMutuallyExclusive("long", "json", "yaml")
}

// shouldUseEditor decides whether a command opens $EDITOR. --no-edit wins,
// then --edit; otherwise the editor opens only on a terminal when the
// command line left the content out.
func shouldUseEditor(hasContent, editFlag, noEditFlag, interactive bool) bool {
	if noEditFlag {
		return false
	}
	if editFlag {
		return true
	}
	return !hasContent && interactive
}

func addUsesEditor(args []string) bool {
	return shouldUseEditor(len(args) > 0, addEdit, addNoEdit, stdinIsTerminal())
}

func updateUsesEditor(args []string) bool {
	return shouldUseEditor(len(args) > 1, updateEdit, updateNoEdit, stdinIsTerminal())
}

func addArgs(cmd *cobra.Command, args []string) error {
	if addUsesEditor(args) {
		return rangeArgs(0, 1, "at most one argument (description) with --edit")(cmd, args)
	}
	return exactArgs(1, "exactly one argument (description)")(cmd, args)
}

func updateArgs(cmd *cobra.Command, args []string) error {
	if updateUsesEditor(args) {
		return rangeArgs(1, 2, "one or two arguments (id, description) with --edit")(cmd, args)
	}
	return exactArgs(2, "two arguments (id, description)")(cmd, args)
}

func runAdd(cmd *cobra.Command, args []string) error {
	var description string
	if len(args) > 0 {
		description = args[0]
	}

	if addUsesEditor(args) {
		data := editor.DefaultCreateData()
		data.Description = description
		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		description = parsed.Description
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	created, err := store.Add(description)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d)\n", created.ID())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	if !updateUsesEditor(args) {
		if _, err := store.Update(id, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", id)
		return nil
	}

	existing, err := store.Show(id)
	if err != nil {
		return err
	}
	data := editor.DataFromTask(existing)
	if len(args) > 1 {
		data.Description = args[1]
	}

	parsed, err := editor.EditTaskWithData(data)
	if err != nil {
		return err
	}

	if _, err := store.Edit(id, parsed.Description, parsed.Status); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", id)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	if _, err := store.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted successfully.\n", id)
	return nil
}

func markCommand(name string, status task.Status, mark func(*task.Store, int) (task.Task, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: fmt.Sprintf("Mark a task as '%s'", status),
		Args:  exactArgs(1, "one argument (id)"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := task.ParseID(args[0])
			if err != nil {
				return err
			}

			store, err := openTaskStore()
			if err != nil {
				return err
			}

			if _, err := mark(store, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %d status updated.\n", id)
			return nil
		},
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	item, err := store.Show(id)
	if err != nil {
		return err
	}

	if showJSON {
		return encodeJSON(cmd.OutOrStdout(), newTaskView(item))
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTaskDetail(item, time.Now()))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	var filter *task.Status
	if len(args) > 0 {
		parsed, err := task.ParseFilter(args[0])
		if err != nil {
			return err
		}
		filter = parsed
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	tasks, err := store.List(task.ListFilter{Status: filter})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case listJSON:
		return encodeJSON(out, taskViews(tasks))
	case listYAML:
		return encodeYAML(out, taskViews(tasks))
	case listLong:
		fmt.Fprint(out, formatTaskBlocks(tasks, filter))
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, taskEmptyListMessage(filter))
		return nil
	}

	fmt.Fprint(out, formatTaskTable(tasks, time.Now()))
	return nil
}
