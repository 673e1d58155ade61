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
	"github.com/studeolab/studeo/pkg/runner/toggle"
)

func addAgenda(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	areaID := ""
	subjectID := ""

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Manage dated tasks and deadlines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an agenda item; the agenda stays sorted by date, undated last.",
		Example: `
studeo agenda add "Biology report" --on 2026-09-04 --area 3f2a
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			doc := p.Document()
			item := &document.AgendaItem{
				Title: strings.Join(args, " "),
				Date:  on,
			}
			if areaID != "" {
				if id, ok := doc.ResolveID(document.CollectionAreas, areaID); ok {
					item.AreaID = id
				} else {
					item.AreaID = areaID
				}
			}
			if subjectID != "" {
				if id, ok := doc.ResolveID(document.CollectionSubjects, subjectID); ok {
					item.SubjectID = id
				} else {
					item.SubjectID = subjectID
				}
			}
			r := &add.Add{Persistence: p, ShowID: io.ShowID, Agenda: item}
			return r.Do(cmd.Context())
		},
	}
	options.AddOnArgs(addCmd, oo)
	addCmd.Flags().StringVar(&areaID, "area", "", "Category id for the item.")
	addCmd.Flags().StringVar(&subjectID, "subject", "", "Subject id for the item.")
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	pending := false
	onFilter := ""
	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List agenda items, optionally filtered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			doc := p.Document()
			r := &get.Get{
				Persistence: p,
				Collection:  document.CollectionAgenda,
				ShowID:      io.ShowID,
				Pending:     pending,
				On:          onFilter,
			}
			if areaID != "" {
				if id, ok := doc.ResolveID(document.CollectionAreas, areaID); ok {
					r.AreaID = id
				} else {
					r.AreaID = areaID
				}
			}
			if subjectID != "" {
				if id, ok := doc.ResolveID(document.CollectionSubjects, subjectID); ok {
					r.SubjectID = id
				} else {
					r.SubjectID = subjectID
				}
			}
			return r.Do(cmd.Context())
		},
	}
	lsCmd.Flags().BoolVar(&pending, "pending", false, "Only items not done.")
	lsCmd.Flags().StringVar(&onFilter, "on", "", "Only items due on the ISO date.")
	lsCmd.Flags().StringVar(&areaID, "area", "", "Only items in the category.")
	lsCmd.Flags().StringVar(&subjectID, "subject", "", "Only items for the subject.")
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	calCmd := &cobra.Command{
		Use:   "cal",
		Short: "Show this month's agenda as a calendar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{
				Persistence: p,
				Collection:  document.CollectionAgenda,
				Calendar:    true,
				Month:       time.Now(),
			}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(calCmd)

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an item done.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &toggle.Toggle{Persistence: p, Collection: document.CollectionAgenda, ID: args[0], ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(doneCmd, io)
	cmd.AddCommand(doneCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an agenda item.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionAgenda, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
