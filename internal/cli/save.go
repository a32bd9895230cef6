package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/engine"
)

var saveCmd = &cobra.Command{
	Use:   "save [path]",
	Short: "Save the current tiling layout to a document",
	Long: `Snapshot every non-empty workspace into a layout document.

Windows recorded in an existing document that are not currently running
are preserved, so closing an app does not erase its saved position.
With no path argument, the configured default path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLayoutPath(args)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SaveLayout(context.Background(), &engine.SaveRequest{Path: path})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Saved %d workspaces (%d windows) to %s", result.Workspaces, result.Windows, result.Path))
		if result.Preserved > 0 {
			PrintDetail(fmt.Sprintf("%d windows preserved from the previous document", result.Preserved))
		}
		return nil
	},
}
