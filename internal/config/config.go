// Package config handles loading task-cli.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/taskcli/internal/paths"
	"github.com/amonks/taskcli/task"
)

const (
	// ProjectFile is the per-directory configuration file name.
	ProjectFile = "task-cli.toml"

	// FileEnvVar overrides the backing file path.
	FileEnvVar = "TASK_CLI_FILE"

	// LogLevelEnvVar overrides the diagnostics log level.
	LogLevelEnvVar = "TASK_CLI_LOG_LEVEL"
)

// Config represents the task-cli.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Log     Log     `toml:"log"`
}

// Storage contains backing file configuration.
type Storage struct {
	// File is the path of the tasks file. Relative paths are resolved
	// against the directory of the config file that sets them.
	File string `toml:"file"`
}

// Log contains diagnostics configuration.
type Log struct {
	// Level is a logrus level name.
	Level string `toml:"level"`
	// Format is "text" (default) or "json".
	Format string `toml:"format"`
}

// Load loads configuration from dir and the global config file, then
// applies environment overrides. Returns an empty config if no config
// files exist.
func Load(dir string) (*Config, error) {
	configDir, err := paths.DefaultConfigDir()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(filepath.Join(configDir, "config.toml"))
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged, err := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta, configDir, dir)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(merged, dir); err != nil {
		return nil, err
	}
	return merged, nil
}

// TasksFile returns the configured tasks file, or task.DefaultFile in dir.
func (c *Config) TasksFile(dir string) string {
	if c != nil && c.Storage.File != "" {
		return c.Storage.File
	}
	return filepath.Join(dir, task.DefaultFile)
}

// JSONLogs reports whether diagnostics should be written as JSON.
func (c *Config) JSONLogs() bool {
	return c != nil && strings.EqualFold(c.Log.Format, "json")
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData, globalDir, projectDir string) (*Config, error) {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.Format = mergeString(projectMeta.IsDefined("log", "format"), projectCfg.Log.Format, globalCfg.Log.Format)

	var err error
	switch {
	case projectMeta.IsDefined("storage", "file"):
		merged.Storage.File, err = paths.Resolve(projectDir, strings.TrimSpace(projectCfg.Storage.File))
	case globalMeta.IsDefined("storage", "file"):
		merged.Storage.File, err = paths.Resolve(globalDir, strings.TrimSpace(globalCfg.Storage.File))
	}
	if err != nil {
		return nil, fmt.Errorf("resolve storage file: %w", err)
	}

	return &merged, nil
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func applyEnv(cfg *Config, dir string) error {
	if file := strings.TrimSpace(os.Getenv(FileEnvVar)); file != "" {
		resolved, err := paths.Resolve(dir, file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", FileEnvVar, err)
		}
		cfg.Storage.File = resolved
	}
	if level := strings.TrimSpace(os.Getenv(LogLevelEnvVar)); level != "" {
		cfg.Log.Level = level
	}
	return nil
}
