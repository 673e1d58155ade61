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

func addArea(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	colorToken := ""
	kind := ""

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage agenda categories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category.",
		Example: `
studeo area add Chores --kind personal --color green
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &add.Add{
				Persistence: p,
				ShowID:      io.ShowID,
				Area: &document.Area{
					Name:  strings.Join(args, " "),
					Color: colorToken,
					Kind:  document.AreaKind(kind),
				},
			}
			return r.Do(cmd.Context())
		},
	}
	addCmd.Flags().StringVar(&colorToken, "color", "", "Color token for the category.")
	addCmd.Flags().StringVar(&kind, "kind", "", `Either "academic" or "personal".`)
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List categories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionAreas, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category. Agenda items keep the reference and render as General.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionAreas, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
