package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/runner/add"
	"github.com/studeolab/studeo/pkg/runner/get"
	"github.com/studeolab/studeo/pkg/runner/remove"
	"github.com/studeolab/studeo/pkg/runner/ring"
	"github.com/studeolab/studeo/pkg/runner/toggle"
)

func addAlarm(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TimeOptions{}

	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage one-shot alarms.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [label]",
		Short: "Add an alarm. It fires once, then stays listed as fired until removed.",
		Example: `
studeo alarm add "Hand in essay" --time 13:45
`,
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
				Alarm: &document.Alarm{
					Time:  t,
					Label: strings.Join(args, " "),
				},
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddTimeArgs(addCmd, to)
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List alarms.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionAlarms, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an alarm by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionAlarms, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Re-arm or disarm an alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &toggle.Toggle{Persistence: p, Collection: document.CollectionAlarms, ID: args[0], ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(toggleCmd, io)
	cmd.AddCommand(toggleCmd)

	ringCmd := &cobra.Command{
		Use:   "ring",
		Short: "Watch the clock and ring alarms as they come due.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &ring.Ring{Persistence: p, Interval: time.Second}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(ringCmd)

	topLevel.AddCommand(cmd)
}
