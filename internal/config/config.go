// Package config handles loading taskflow.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/taskflowapp/taskflow/internal/paths"
)

// Config represents the taskflow.toml configuration file.
type Config struct {
	Storage  Storage  `toml:"storage"`
	Defaults Defaults `toml:"defaults"`
	Display  Display  `toml:"display"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Dir overrides the state directory holding the persisted slot.
	Dir string `toml:"dir"`
}

// Defaults contains default task field values for new tasks.
type Defaults struct {
	// Category is the category applied when none is given.
	Category string `toml:"category"`

	// Priority is the priority applied when none is given.
	Priority string `toml:"priority"`
}

// Display contains output-related configuration.
type Display struct {
	// DateLayout is the Go time layout used for due dates in tables.
	DateLayout string `toml:"date-layout"`
}

// Load loads configuration from the working directory and the global
// config file, with project values taking precedence. Returns an empty
// config if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, "taskflow.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
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

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Dir = mergeString(projectMeta.IsDefined("storage", "dir"), projectCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Defaults.Category = mergeString(projectMeta.IsDefined("defaults", "category"), projectCfg.Defaults.Category, globalCfg.Defaults.Category)
	merged.Defaults.Priority = mergeString(projectMeta.IsDefined("defaults", "priority"), projectCfg.Defaults.Priority, globalCfg.Defaults.Priority)
	merged.Display.DateLayout = mergeString(projectMeta.IsDefined("display", "date-layout"), projectCfg.Display.DateLayout, globalCfg.Display.DateLayout)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
