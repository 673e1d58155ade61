package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/document"
)

func addTheme(topLevel *cobra.Command) {
	primary := ""

	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the theme and accent color.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := p.SetTheme(document.Theme(args[0])); err != nil {
					return err
				}
			}
			if primary != "" {
				if err := p.SetPrimaryColor(primary); err != nil {
					return err
				}
			}
			doc := p.Document()
			accent := doc.PrimaryColor
			if accent == "" {
				accent = "default"
			}
			fmt.Printf("theme: %s, accent: %s\n", doc.Theme, accent)
			return nil
		},
	}
	cmd.Flags().StringVar(&primary, "color", "", "Accent color token.")

	topLevel.AddCommand(cmd)
}
