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

func addBlock(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	startString := ""
	endString := ""

	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage timetable time blocks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a time block; blocks stay sorted by start.",
		Example: `
studeo block add "First period" --start 08:00 --end 08:50
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := document.ParseClock(startString)
			if err != nil {
				return err
			}
			end, err := document.ParseClock(endString)
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
				Block: &document.TimeBlock{
					Name:  strings.Join(args, " "),
					Start: start,
					End:   end,
				},
			}
			return r.Do(cmd.Context())
		},
	}
	addCmd.Flags().StringVar(&startString, "start", "", `Block start, example: --start="08:00".`)
	addCmd.Flags().StringVar(&endString, "end", "", `Block end (exclusive), example: --end="08:50".`)
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List time blocks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionBlocks, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a time block.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionBlocks, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
