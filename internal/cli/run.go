package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentsync/agentsync/internal/engine"
)

var (
	runForce          bool
	runNonInteractive bool
	runDryRun         bool
	runAgent          string
)

var runCmd = &cobra.Command{
	Use:     "run [scope]",
	Short:   "Merge the configuration hierarchy into output directories",
	GroupID: "sync-operations",
	Long: `Merge the configured source hierarchy into each scope's output
directory. With a scope argument only that scope is synced; otherwise
every configured scope is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine(runAgent)
		if err != nil {
			return err
		}

		scope := ""
		if len(args) == 1 {
			scope = args[0]
		}
		names, err := scopeNames(cfg, scope)
		if err != nil {
			return err
		}

		agent := runAgent
		if agent == "" {
			agent = cfg.Agent
		}

		totalSkipped := 0
		for _, name := range names {
			settings, err := cfg.Scope(name)
			if err != nil {
				return err
			}

			subdir := settings.Subdir
			if subdir == "" {
				subdir = name
			}

			res, err := eng.Merge(engine.Request{
				OutputDir:      settings.Directory,
				Scope:          name,
				Subdir:         subdir,
				Agent:          agent,
				DirKind:        settings.Kind,
				Force:          runForce,
				NonInteractive: runNonInteractive,
				DryRun:         runDryRun,
			})
			if err != nil {
				return err
			}

			printRunResult(name, settings.Directory, res)
			totalSkipped += res.SkippedClobber + res.SkippedType
		}

		if runNonInteractive && totalSkipped > 0 {
			return fmt.Errorf("%d skipped in non-interactive mode", totalSkipped)
		}
		return nil
	},
}

func printRunResult(scope, outputDir string, res *engine.Result) {
	printSection(fmt.Sprintf("%s → %s", scope, outputDir))

	for _, w := range res.Warnings {
		printWarning(w)
	}

	verb := "wrote"
	if runDryRun {
		verb = "would write"
	}
	printSuccess(fmt.Sprintf("%s %d file(s), skipped %d, retired %d",
		verb, len(res.Written), len(res.Skipped), len(res.Deleted)))

	for _, f := range res.Written {
		printLabelValue(verb, f)
	}
	for _, f := range res.Skipped {
		printLabelValue("skipped", f)
	}
	for _, f := range res.Deleted {
		printLabelValue("retired", f)
	}
}

func init() {
	runCmd.Flags().BoolVar(&runForce, "force", false, "Overwrite unmanaged files and type mismatches")
	runCmd.Flags().BoolVar(&runNonInteractive, "non-interactive", false, "Never prompt; exit non-zero if anything was skipped")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Report what would happen without writing anything")
	runCmd.Flags().StringVar(&runAgent, "agent", "", "Producer id recorded in manifests (defaults to configured agent)")
	rootCmd.AddCommand(runCmd)
}
