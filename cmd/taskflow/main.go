// Package main implements the taskflow CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taskflowapp/taskflow/internal/config"
	"github.com/taskflowapp/taskflow/internal/paths"
	"github.com/taskflowapp/taskflow/internal/storage"
	"github.com/taskflowapp/taskflow/internal/styles"
	"github.com/taskflowapp/taskflow/task"
)

// StateDirEnvVar overrides the state directory holding the persisted slot.
const StateDirEnvVar = "TASKFLOW_STATE_DIR"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "Taskflow - a Kanban-style task tracker",
}

// loadConfig loads taskflow.toml from the working directory and the
// global config path.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// stateDir resolves the state directory: environment override first, then
// config, then the default.
func stateDir(cfg *config.Config) (string, error) {
	if dir := os.Getenv(StateDirEnvVar); dir != "" {
		return dir, nil
	}
	if cfg != nil && cfg.Storage.Dir != "" {
		return cfg.Storage.Dir, nil
	}
	return paths.DefaultStateDir()
}

// openStore opens the persistent task store.
func openStore() (*task.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dir, err := stateDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := task.Open(task.OpenOptions{
		Storage:      storage.NewFileStore(dir),
		ThemeApplier: styles.Applier{},
	})
	return store, cfg, nil
}
