// Package cli implements the aerostate command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for aerostate.
var rootCmd = &cobra.Command{
	Use:     "aerostate",
	Version: "dev",
	Short:   "Tiling window layout snapshots",
	Long: `aerostate saves the tiling window layout to a document and restores it
after a restart, matching windows back into their saved positions by
owning application and title.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "layout",
		Title: "Layout Snapshots:",
	})

	saveCmd.GroupID = "layout"
	loadCmd.GroupID = "layout"
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the aerostate version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
