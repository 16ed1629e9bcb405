package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/resprune/cmd/modules"
	"github.com/LegacyCodeHQ/resprune/cmd/prune"
	"github.com/LegacyCodeHQ/resprune/cmd/watch"
	"github.com/LegacyCodeHQ/resprune/internal/logging"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command: resprune <mode> <rootDir> <resourcesPath>
var rootCmd = NewRootCommand()

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCommand returns the prune command with its subcommands and the
// persistent logging flag attached.
func NewRootCommand() *cobra.Command {
	root := prune.NewCommand()
	root.Version = version

	logLevel := logging.DefaultLevel
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	}

	// Register subcommands
	root.AddCommand(modules.NewCommand())
	root.AddCommand(watch.NewCommand())

	// Initialize annotations for version template
	if root.Annotations == nil {
		root.Annotations = make(map[string]string)
	}
	root.Annotations["buildDate"] = buildDate
	root.Annotations["commit"] = commit

	// Customize version template to show additional build info
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return root
}
