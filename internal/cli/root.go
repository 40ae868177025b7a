// Package cli implements the agentsync command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for agentsync.
var rootCmd = &cobra.Command{
	Use:     "agentsync",
	Version: "dev",
	Short:   "Layered configuration sync for AI coding agents",
	Long: `agentsync merges configuration files from a hierarchy of sources
(organization, team, personal) into per-tool output directories.

Higher-priority sources are layered on top of lower ones, file-type
aware mergers combine overlapping files, and a manifest in each output
directory tracks ownership so user files are never clobbered.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the build version shown by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sync-operations",
		Title: "Sync Operations:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the agentsync version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command, reporting any failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err.Error())
	}
	return err
}
