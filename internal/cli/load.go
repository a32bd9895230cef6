package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/engine"
)

var loadVerbose bool

var loadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Restore the tiling layout from a document",
	Long: `Rebuild the tiling tree from a layout document.

Live windows are matched to document entries by owning application and
title, with a fuzzy title fallback. Entries whose window is not running
are skipped; windows the document does not claim are re-tiled. With no
path argument, the configured default path is used.`,
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

		result, err := eng.LoadLayout(context.Background(), &engine.LoadRequest{Path: path})
		if err != nil {
			return err
		}

		if loadVerbose {
			printMatchLog(result)
		}
		PrintSuccess(fmt.Sprintf("Matched %d windows, %d windows not found", result.Matched, result.Unmatched))
		return nil
	},
}

func printMatchLog(result *engine.LoadResult) {
	for _, rec := range result.Log {
		entry := fmt.Sprintf("[%s] %s: %s", rec.Workspace, rec.AppBundleID, rec.Title)
		switch rec.Outcome {
		case engine.MatchExact:
			PrintInfo(fmt.Sprintf("matched  %s", entry))
		case engine.MatchFuzzy:
			PrintInfo(fmt.Sprintf("matched  %s", entry))
			PrintDetail(fmt.Sprintf("fuzzy title match: %q", rec.LiveTitle))
		default:
			PrintWarning(fmt.Sprintf("no window for %s", entry))
		}
	}
}

func init() {
	loadCmd.Flags().BoolVarP(&loadVerbose, "verbose", "v", false, "Log the match status of every window entry")
}
