package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestAliasUsesSingleFlag(t *testing.T) {
	var yamlOut bool
	cmd := &cobra.Command{Use: "example"}
	cmd.SetGlobalNormalizationFunc(aliasNormalizer(flagAliases))
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Output as YAML")

	if err := cmd.Flags().Set("yml", "true"); err != nil {
		t.Fatalf("set yml alias: %v", err)
	}
	if !yamlOut {
		t.Fatal("expected yaml to be set via alias")
	}
	if !cmd.Flags().Changed("yaml") {
		t.Fatal("expected yaml flag to be marked as changed")
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--yml") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
}

func TestRootAliasesResolve(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	if flag := flags.Lookup("tasks-file"); flag == nil || flag.Name != "file" {
		t.Fatal("expected --tasks-file to resolve to --file")
	}
	if flag := flags.Lookup("log_level"); flag == nil || flag.Name != "log-level" {
		t.Fatal("expected --log_level to resolve to --log-level")
	}
}
