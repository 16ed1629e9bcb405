package modules

import (
	"fmt"
	"path/filepath"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"github.com/LegacyCodeHQ/resprune/resources"
	"github.com/spf13/cobra"
)

type modulesOptions struct {
	outputFormat string
}

// NewCommand returns a new modules command instance.
func NewCommand() *cobra.Command {
	opts := &modulesOptions{
		outputFormat: OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "modules <rootDir>",
		Short: "List the modules whose sources are scanned",
		Long: `List the modules found below rootDir, nested modules under their parents.

A module is a directory containing build.gradle or build.gradle.kts. Only
module directories are searched for nested modules.

Examples:
  resprune modules .
  resprune modules . -f dot`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModules(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", SupportedFormats()))

	return cmd
}

func runModules(cmd *cobra.Command, opts *modulesOptions, rootDir string) error {
	formatter, err := NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	root := filepath.Clean(rootDir)
	found, err := resources.FindModules(cmd.Context(), fsys.OS(), root)
	if err != nil {
		return fmt.Errorf("failed to find modules: %w", err)
	}

	graph, err := resources.BuildModuleGraph(root, found)
	if err != nil {
		return fmt.Errorf("failed to build module graph: %w", err)
	}

	output, err := formatter.Format(graph)
	if err != nil {
		return fmt.Errorf("failed to format modules: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
