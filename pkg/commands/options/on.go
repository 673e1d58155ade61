package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studeolab/studeo/pkg/document"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a due date: "2026-05-28", "today", or "tomorrow".`)
}

// GetOn resolves the flag to an ISO date, empty meaning undated.
func (o *OnOptions) GetOn() (string, error) {
	switch o.OnString {
	case "":
		return "", nil
	case "today":
		return time.Now().Format(document.LayoutISO), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1).Format(document.LayoutISO), nil
	}
	if _, err := time.Parse(document.LayoutISO, o.OnString); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", o.OnString, err)
	}
	return o.OnString, nil
}

// TimeOptions
type TimeOptions struct {
	TimeString string
}

func AddTimeArgs(cmd *cobra.Command, o *TimeOptions) {
	cmd.Flags().StringVarP(&o.TimeString, "time", "t", "",
		`Specify a time of day, example: --time="09:00".`)
}

// GetTime parses the required HH:MM flag.
func (o *TimeOptions) GetTime() (document.Clock, error) {
	if o.TimeString == "" {
		return 0, fmt.Errorf("a --time is required")
	}
	return document.ParseClock(o.TimeString)
}
