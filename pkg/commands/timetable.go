package commands

import (
	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/runner/assign"
	"github.com/studeolab/studeo/pkg/runner/get"
)

func addTimetable(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Manage the weekly timetable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	assignCmd := &cobra.Command{
		Use:   "assign <day> <block-id> <subject-id>",
		Short: "Assign a subject to a slot. An occupied slot is replaced.",
		Example: `
studeo timetable assign monday 3f2a math
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := document.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &assign.Assign{
				Persistence: p,
				Day:         day,
				BlockID:     args[1],
				SubjectID:   args[2],
				ShowID:      io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(assignCmd, io)
	cmd.AddCommand(assignCmd)

	clearCmd := &cobra.Command{
		Use:   "clear <day> <block-id>",
		Short: "Clear a slot.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := document.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &assign.Assign{
				Persistence: p,
				Day:         day,
				BlockID:     args[1],
				Clear:       true,
				ShowID:      io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(clearCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekly grid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionTimetable, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(showCmd, io)
	cmd.AddCommand(showCmd)

	topLevel.AddCommand(cmd)
}
