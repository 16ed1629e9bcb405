package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/resprune/cmd/prune"
	"github.com/spf13/cobra"
)

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <mode> <rootDir> <resourcesPath>",
		Short: "Watch a project and keep reporting its unused resources",
		Long: `Watch rootDir and the resources location for changes and print the
unused resources of the given mode whenever the set changes.

Watch mode only reports; it never deletes. Run without watch to prune.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args)
		},
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := prune.ConfigFromArgs(args, true)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := newReporter(cmd.OutOrStdout())
	if err := r.rescan(ctx, cfg); err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", cfg.RootDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRescan(ctx, cfg, r)
}
