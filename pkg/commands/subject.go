package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/commands/options"
	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/runner/add"
	"github.com/studeolab/studeo/pkg/runner/get"
	"github.com/studeolab/studeo/pkg/runner/grade"
	"github.com/studeolab/studeo/pkg/runner/remove"
)

func addSubject(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	teacher := ""
	colorToken := ""

	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects, grades, and attendance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject.",
		Example: `
studeo subject add History --teacher "Mr. Duarte" --color blue
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
				Subject: &document.Subject{
					Name:    strings.Join(args, " "),
					Teacher: teacher,
					Color:   colorToken,
				},
			}
			return r.Do(cmd.Context())
		},
	}
	addCmd.Flags().StringVar(&teacher, "teacher", "", "Teacher's name.")
	addCmd.Flags().StringVar(&colorToken, "color", "", "Color token for the subject.")
	options.AddShowIDArgs(addCmd, io)
	cmd.AddCommand(addCmd)

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List subjects with averages and absences.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &get.Get{Persistence: p, Collection: document.CollectionSubjects, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(lsCmd, io)
	cmd.AddCommand(lsCmd)

	gradeCmd := &cobra.Command{
		Use:   "grade <id> <percent>",
		Short: "Record a grade (0-100).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &grade.Grade{Persistence: p, SubjectID: args[0], Grade: &value, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(gradeCmd, io)
	cmd.AddCommand(gradeCmd)

	absentCmd := &cobra.Command{
		Use:   "absent <id>",
		Short: "Record an absence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &grade.Grade{Persistence: p, SubjectID: args[0], Absences: 1, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(absentCmd, io)
	cmd.AddCommand(absentCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a subject.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			r := &remove.Remove{Persistence: p, Collection: document.CollectionSubjects, ID: args[0]}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rmCmd)

	topLevel.AddCommand(cmd)
}
