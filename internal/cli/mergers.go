package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentsync/agentsync/internal/merge"
)

var mergersCmd = &cobra.Command{
	Use:     "mergers",
	Short:   "List the registered mergers and their settings",
	GroupID: "cli-tooling",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := merge.NewDefaultRegistry()

		for _, m := range registry.Mergers() {
			printSection(m.Name())
			if m == registry.Default() {
				printLabelValue("role", "default for unregistered file types")
			}

			specs := m.Settings()
			if len(specs) == 0 {
				printLabelValue("settings", "none")
				continue
			}
			for _, s := range specs {
				printLabelValue(s.Name, describeSetting(s))
			}
		}
		return nil
	},
}

func describeSetting(s merge.SettingSpec) string {
	desc := fmt.Sprintf("%s, default %q", s.Type, fmt.Sprintf("%v", s.Default))
	if s.Min != nil && s.Max != nil {
		desc += fmt.Sprintf(", range %d-%d", *s.Min, *s.Max)
	}
	if len(s.Choices) > 0 {
		desc += fmt.Sprintf(", one of %v", s.Choices)
	}
	return desc
}

func init() {
	rootCmd.AddCommand(mergersCmd)
}
