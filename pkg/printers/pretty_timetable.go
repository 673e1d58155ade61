package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/studeolab/studeo/pkg/document"
)

// Timetable renders the weekly grid: one row per time block in start
// order, one column per weekday. Empty slots show a dash; assignments
// whose subject is gone show the fallback label.
func (pp *PrettyPrint) Timetable(doc *document.Document) {
	if len(doc.Blocks) == 0 {
		pp.none()
		return
	}

	days := document.Weekdays()

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, 0, len(days)+1)
	header = append(header, "")
	for _, day := range days {
		header = append(header, string(day)[:3])
	}
	tbl.AddRow(header...)

	for _, b := range doc.Blocks {
		row := make([]interface{}, 0, len(days)+1)
		row = append(row, fmt.Sprintf("%s–%s %s", b.Start, b.End, b.Name))
		for _, day := range days {
			row = append(row, slotLabel(doc, day, b.ID))
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func slotLabel(doc *document.Document, day document.Weekday, blockID string) string {
	for _, a := range doc.Timetable[day] {
		if a.BlockID != blockID {
			continue
		}
		if s, ok := doc.SubjectByID(a.SubjectID); ok {
			return s.Name
		}
		return "General"
	}
	return "·"
}
