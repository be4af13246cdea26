package main

import (
	"github.com/spf13/pflag"
)

// flagAliases maps accepted spellings to canonical flag names. Aliases do
// not appear in usage output.
var flagAliases = map[string]string{
	"tasks-file": "file",
	"log_level":  "log-level",
	"loglevel":   "log-level",
	"yml":        "yaml",
}

func init() {
	// AddCommand copies the global normalizer to every subcommand.
	rootCmd.SetGlobalNormalizationFunc(aliasNormalizer(flagAliases))
}

func aliasNormalizer(aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return pflag.NormalizedName(name)
	}
}
