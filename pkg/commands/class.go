package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/runner/add"
	"github.com/studeolab/studeo/pkg/runner/get"
	"github.com/studeolab/studeo/pkg/runner/remove"
)

func addClass(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TimeOptions{}
	link := ""

	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage the daily class schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a class; the schedule stays sorted by time.",
		Example: `
studeo class add Math --time 09:00 --link https://meet.example.edu/math
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := to.GetTime()
			if err != nil {
				return err
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &add.Add{
				Persistence: p,
				ShowID:      io.ShowID,
				Class: &document.ScheduleEntry{
					Time:  t,
					Title: strings.Join(args, " "),
					Link:  link,
				},
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddTimeArgs(addCmd, to)
	options.AddShowIDArgs(addCmd, io)
	addCmd.Flags().StringVar(&link, "link", "", "Meeting link for the class.")
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List the schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionSchedule, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a class by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionSchedule, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
