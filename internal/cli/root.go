// Package cli provides the command-line interface for safe-rsync.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aandersen/safe-rsync/internal/app"
	"github.com/aandersen/safe-rsync/internal/usecase"
)

// NewRootCommand creates the root command for safe-rsync.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dryRun bool

	root := &cobra.Command{
		Use:   "safe-rsync <source> <destination>",
		Short: "Fast and safe rsync wrapper with colorful progress and logs",
		Long: `safe-rsync mirrors one directory tree onto another with rsync,
preserving overwritten and deleted files in a timestamped backup directory
nested inside the destination, and writes a summary log of every run.

Example:
  safe-rsync -n ~/data1 ~/data2`,
		Args:    cobra.ExactArgs(2),
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			uc := c.RunSyncUseCase(NewConsoleReporter(out), out)

			result, err := uc.Execute(cmd.Context(), usecase.RunSyncInput{
				Source: args[0],
				Dest:   args[1],
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			renderOutcome(out, result)
			return nil
		},
	}

	root.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Dry run (no changes)")

	return root
}

// renderOutcome prints the final end-of-run block, distinguishing a dry run
// (nothing changed) from a real run (backup and log written).
func renderOutcome(out io.Writer, result *usecase.RunSyncOutput) {
	fmt.Fprintln(out)
	if result.DryRun {
		fmt.Fprintln(out, successStyle.Render("✅ Dry run complete. Nothing changed."))
	} else {
		fmt.Fprintln(out, successStyle.Render("✅ Rsync complete."))
	}
	fmt.Fprintf(out, "   📁 Source      : %s\n", infoStyle.Render(result.Source))
	fmt.Fprintf(out, "   📂 Destination : %s\n", infoStyle.Render(result.Dest))
	if !result.DryRun {
		fmt.Fprintf(out, "   💾 Backup dir  : %s\n", infoStyle.Render(result.BackupDir))
		fmt.Fprintf(out, "   📝 Log file    : %s\n", infoStyle.Render(result.LogPath))
	}
	fmt.Fprintf(out, "   🔍 Dry run     : %v\n", result.DryRun)
}
