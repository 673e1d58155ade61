package commands

import (
	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/runner/dashboard"
)

func addToday(topLevel *cobra.Command) {
	once := false

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Live dashboard: current block, next class, next alarm, pending agenda.",
		Example: `
studeo today
studeo today --once
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &dashboard.Dashboard{Persistence: p, Once: once}
			return r.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Print a single snapshot and exit.")

	topLevel.AddCommand(cmd)
}
