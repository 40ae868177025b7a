package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status [scope]",
	Short:   "Show what agentsync manages in each output directory",
	GroupID: "sync-operations",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine("")
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

		for _, name := range names {
			settings, err := cfg.Scope(name)
			if err != nil {
				return err
			}

			info := eng.Status(settings.Directory)
			printSection(fmt.Sprintf("%s → %s", name, info.OutputDir))

			if info.LastSynced == "" {
				printLabelValue("last synced", "never")
				continue
			}
			printLabelValue("last synced", info.LastSynced)
			printLabelValue("managed files", fmt.Sprintf("%d", len(info.Files)))

			for _, f := range info.Files {
				hash := f.Hash
				if len(hash) > 12 {
					hash = hash[:12]
				}
				printLabelValue(f.Name, fmt.Sprintf("%s [%s]", strings.Join(f.Agents, ", "), hash))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
