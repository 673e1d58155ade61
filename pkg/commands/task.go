package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/runner/add"
	"github.com/studeolab/studeo/pkg/runner/get"
	"github.com/studeolab/studeo/pkg/runner/move"
	"github.com/studeolab/studeo/pkg/runner/remove"
)

func addTask(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the two-lane task board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the to-do lane.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			r := &add.Add{Persistence: p, ShowID: io.ShowID, Task: &text, Lane: document.LaneTodo}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "Show the board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionBoard, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Move a task to the done lane.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &move.Move{Persistence: p, From: document.LaneTodo, To: document.LaneDone, ID: args[0], ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(doneCmd, io)
	cmd.AddCommand(doneCmd)

	undoCmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Move a task back to the to-do lane.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &move.Move{Persistence: p, From: document.LaneDone, To: document.LaneTodo, ID: args[0], ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(undoCmd, io)
	cmd.AddCommand(undoCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task from either lane.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionBoard, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
