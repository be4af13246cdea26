package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/taskcli/task"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the tasks file against the strict JSON format",
	Long: `Check the tasks file against the strict JSON format.

Commands read damaged files leniently, skipping what they cannot use.
validate reports every deviation instead, including raw control
characters inside descriptions, and exits with status 1 if any exist.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	data, err := os.ReadFile(store.Path())
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "%s does not exist yet; nothing to check.\n", store.Path())
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tasks file: %w", err)
	}

	result, err := task.ValidateFile(data)
	if err != nil {
		return err
	}

	decoded := task.Decode(data)
	if result.Valid {
		fmt.Fprintf(out, "%s is valid (%d tasks).\n", store.Path(), len(decoded.Tasks))
		return nil
	}

	for _, problem := range result.Errors {
		fmt.Fprintf(out, "  %s\n", problem)
	}
	fmt.Fprintf(out, "%d of the stored tasks are still readable.\n", len(decoded.Tasks))
	return fmt.Errorf("%s is invalid: %d problem(s)", store.Path(), len(result.Errors))
}
