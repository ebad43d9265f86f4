// Package listflags holds flag helpers shared by listing commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag registers the --all flag, which includes done tasks that
// listings hide by default.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "all", false, "Include done tasks")
}
