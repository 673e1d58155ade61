// Package commands wires the studeo CLI. Each command builds a runner and
// hands it the shared store; rendering stays in pkg/printers and the
// dashboard, never in the store itself.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studeo",
		Short: options.Wrap80("Student life planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addClass(topLevel)
	addAlarm(topLevel)
	addTask(topLevel)
	addArea(topLevel)
	addBlock(topLevel)
	addTimetable(topLevel)
	addSubject(topLevel)
	addAgenda(topLevel)
	addToday(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

func loadStore() (*store.Store, error) {
	return store.Load(nil)
}
