package prune

import (
	"fmt"

	"github.com/LegacyCodeHQ/resprune/internal/logging"
	"github.com/LegacyCodeHQ/resprune/resources"
	"github.com/spf13/cobra"
)

type pruneOptions struct {
	dryRun bool
}

// NewCommand returns a new prune command instance.
func NewCommand() *cobra.Command {
	opts := &pruneOptions{}

	cmd := &cobra.Command{
		Use:   "resprune <mode> <rootDir> <resourcesPath>",
		Short: "Find and delete Android resources that nothing references",
		Long: `Find declared resources that are never referenced from source or markup
files, and delete the unreferenced ones.

Modes:
  drawable, layout   resourcesPath is a directory with one file per resource;
                     unused resource files are deleted
  color, dimen       resourcesPath is a shared declarations file (e.g. colors.xml);
                     unused declarations are reported only

Modules are directories below rootDir containing build.gradle or
build.gradle.kts; their src directories are scanned for .java, .kt and .xml
files. A resource counts as used when any file contains R.<mode>.<name> or
<mode>/<name>.

Examples:
  resprune drawable . app/src/main/res/drawable
  resprune color . app/src/main/res/values/colors.xml
  resprune layout -n . app/src/main/res/layout`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Report unused resources without deleting them")

	return cmd
}

// ConfigFromArgs builds the run configuration from the positional
// <mode> <rootDir> <resourcesPath> arguments. The mode is checked when the
// run first needs it.
func ConfigFromArgs(args []string, dryRun bool) resources.Config {
	return resources.Config{
		Category:      resources.Category(args[0]),
		RootDir:       args[1],
		ResourcesPath: args[2],
		DryRun:        dryRun,
	}
}

func runPrune(cmd *cobra.Command, opts *pruneOptions, args []string) error {
	cfg := ConfigFromArgs(args, opts.dryRun)
	logger := logging.FromContext(cmd.Context())
	logger.Info("pruning resources", "mode", cfg.Category, "root", cfg.RootDir, "resources", cfg.ResourcesPath, "dryRun", cfg.DryRun)

	result, err := resources.Run(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to prune resources: %w", err)
	}

	return WriteReport(cmd.OutOrStdout(), result)
}
