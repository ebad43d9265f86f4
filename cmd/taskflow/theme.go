package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowapp/taskflow/task"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between light and dark",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd, themeToggleCmd)
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	fmt.Println(store.Theme())
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	theme, err := task.NormalizeTheme(task.Theme(args[0]))
	if err != nil {
		return err
	}

	store.SetTheme(theme)
	fmt.Printf("Theme set to %s.\n", theme)
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	theme := store.ToggleTheme()
	fmt.Printf("Theme set to %s.\n", theme)
	return nil
}
